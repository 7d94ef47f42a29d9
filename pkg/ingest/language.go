package ingest

import "strings"

// DetectLanguage guesses the language of a task description so outbound
// comments can match the creator. A small stop-word heuristic covers the
// languages the board population actually uses; everything else defaults to
// English.
func DetectLanguage(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return "en"
	}

	scores := map[string]int{}
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?¿¡()\"'")
		for lang, set := range stopWords {
			if set[w] {
				scores[lang]++
			}
		}
	}

	best, bestScore := "en", 0
	for lang, score := range scores {
		if score > bestScore {
			best, bestScore = lang, score
		}
	}
	// Require at least two hits before overriding the default.
	if bestScore < 2 {
		return "en"
	}
	return best
}

var stopWords = map[string]map[string]bool{
	"es": wordSet("el la los las una uno que para por favor añadir crear con del cambiar nuevo nueva"),
	"fr": wordSet("le la les des une est pour ajouter créer avec nouveau nouvelle veuillez s'il"),
	"pt": wordSet("o os as um uma que para por adicionar criar com do novo nova não"),
	"en": wordSet("the a an please add create with for new should must endpoint"),
}

func wordSet(s string) map[string]bool {
	m := map[string]bool{}
	for _, w := range strings.Fields(s) {
		m[w] = true
	}
	return m
}

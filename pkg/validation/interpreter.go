// Package validation implements the human-validation coordinator: posting
// prompts to the board item, polling for the authorized reply, interpreting
// it, and resuming or finishing the suspended run.
package validation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/forgeflow/forgeflow/pkg/llm"
	"github.com/forgeflow/forgeflow/pkg/models"
)

// Interpreter turns a free-form human reply into a verdict. A model is used
// when configured; the rule-based matcher is always available and is the
// authoritative fallback.
type Interpreter struct {
	model  llm.Client
	logger *slog.Logger
}

// NewInterpreter creates an interpreter. model may be nil (rule-based only).
func NewInterpreter(model llm.Client) *Interpreter {
	return &Interpreter{
		model:  model,
		logger: slog.Default().With("component", "validation-interpreter"),
	}
}

// Interpret analyzes a reply. Question/unclear verdicts mean "keep waiting".
func (i *Interpreter) Interpret(ctx context.Context, reply string) models.Interpretation {
	rule := ruleInterpret(reply)
	if i.model == nil {
		return rule
	}

	modeled, err := i.modelInterpret(ctx, reply)
	if err != nil {
		i.logger.Warn("Model interpretation failed, using rule result", "error", err)
		return rule
	}
	if modeled.Verdict == models.VerdictUnclear && rule.Verdict != models.VerdictUnclear {
		return rule
	}
	return modeled
}

func (i *Interpreter) modelInterpret(ctx context.Context, reply string) (models.Interpretation, error) {
	resp, err := i.model.Complete(ctx, llm.Request{
		System: `You classify a human review reply about a proposed code change.
Verdicts: "approve" (merge it), "reject" (wants changes), "abandon" (stop the task),
"question" (asking something, not deciding), "unclear".
Respond with JSON only: {"verdict": "...", "confidence": 0.0-1.0, "instructions": "change requests, if rejecting"}`,
		Prompt:    reply,
		MaxTokens: 512,
	})
	if err != nil {
		return models.Interpretation{}, err
	}
	var out struct {
		Verdict      string  `json:"verdict"`
		Confidence   float64 `json:"confidence"`
		Instructions string  `json:"instructions"`
	}
	if err := llm.DecodeJSON(resp.Text, &out); err != nil {
		return models.Interpretation{}, err
	}
	verdict := models.Verdict(out.Verdict)
	switch verdict {
	case models.VerdictApprove, models.VerdictReject, models.VerdictAbandon,
		models.VerdictQuestion, models.VerdictUnclear, models.VerdictClarification:
	default:
		verdict = models.VerdictUnclear
	}
	if out.Confidence < 0 {
		out.Confidence = 0
	}
	if out.Confidence > 1 {
		out.Confidence = 1
	}
	return models.Interpretation{
		Verdict:      verdict,
		Confidence:   out.Confidence,
		Method:       models.MethodModel,
		Instructions: strings.TrimSpace(out.Instructions),
	}, nil
}

// Keyword sets for the rule matcher, covering the languages the outbound
// templates support. Word-boundary matched after normalization.
var (
	abandonWords = []string{
		"abandon", "stop", "cancel", "abort", "drop it",
		"detener", "cancelar", "cancela", "abandonar",
		"annuler", "annule", "arrête", "abandonner",
		"parar", "pare", "cancele", "abandonar",
	}
	approveWords = []string{
		"approve", "approved", "lgtm", "looks good", "merge", "ship it", "go ahead",
		"yes", "ok", "okay", "valid",
		"aprobado", "apruebo", "adelante", "sí", "vale", "válido",
		"approuvé", "oui", "d'accord", "vas-y", "valide",
		"aprovado", "aprovo", "sim", "pode mesclar",
	}
	rejectWords = []string{
		"reject", "rejected", "change", "fix", "modify", "rework", "wrong", "not right", "redo", "no",
		"rechazado", "rechazo", "cambia", "arregla",
		"rejeté", "refuse", "modifie", "corrige", "non",
		"rejeitado", "rejeito", "mude", "conserte", "não",
	}
)

// ruleInterpret is the deterministic matcher. Precedence: an explicit stop
// beats everything, then questions, then reject, then approve — a reply like
// "yes, but fix the tests" is a rejection with instructions.
func ruleInterpret(reply string) models.Interpretation {
	text := normalizeReply(reply)
	if text == "" {
		return models.Interpretation{Verdict: models.VerdictUnclear, Confidence: 0, Method: models.MethodRule}
	}

	if matchAny(text, abandonWords) {
		return models.Interpretation{Verdict: models.VerdictAbandon, Confidence: 0.9, Method: models.MethodRule}
	}
	if strings.HasSuffix(strings.TrimSpace(reply), "?") {
		return models.Interpretation{Verdict: models.VerdictQuestion, Confidence: 0.7, Method: models.MethodRule}
	}

	rejected := matchAny(text, rejectWords)
	approved := matchAny(text, approveWords)
	switch {
	case rejected:
		return models.Interpretation{
			Verdict:      models.VerdictReject,
			Confidence:   0.8,
			Method:       models.MethodRule,
			Instructions: strings.TrimSpace(reply),
		}
	case approved:
		confidence := 0.8
		if len(strings.Fields(text)) <= 3 {
			confidence = 0.95
		}
		return models.Interpretation{Verdict: models.VerdictApprove, Confidence: confidence, Method: models.MethodRule}
	default:
		return models.Interpretation{Verdict: models.VerdictUnclear, Confidence: 0.2, Method: models.MethodRule}
	}
}

// normalizeReply lowercases and strips punctuation to spaces so keyword
// matching works on word boundaries.
func normalizeReply(reply string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(reply) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '\'', r == '-',
			r > 127: // keep accented letters
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func matchAny(text string, words []string) bool {
	padded := " " + text + " "
	for _, w := range words {
		if strings.Contains(padded, " "+w+" ") {
			return true
		}
	}
	return false
}

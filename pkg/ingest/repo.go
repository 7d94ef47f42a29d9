package ingest

import "regexp"

var repoURLPattern = regexp.MustCompile(`https://github\.com/[\w.-]+/[\w.-]+`)

// ExtractRepoURL finds the first repository URL mentioned in a task
// description, or "" when none is present.
func ExtractRepoURL(text string) string {
	return repoURLPattern.FindString(text)
}

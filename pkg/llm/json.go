package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSON unmarshals a model completion into out, tolerating markdown
// code fences and surrounding prose around the JSON object.
func DecodeJSON(text string, out any) error {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if i := strings.LastIndex(cleaned, "```"); i >= 0 {
			cleaned = cleaned[:i]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	// Fall back to the outermost braces when the model wrapped the object
	// in prose.
	if !strings.HasPrefix(cleaned, "{") {
		start := strings.Index(cleaned, "{")
		end := strings.LastIndex(cleaned, "}")
		if start < 0 || end <= start {
			return fmt.Errorf("no JSON object in completion")
		}
		cleaned = cleaned[start : end+1]
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return fmt.Errorf("decode completion JSON: %w", err)
	}
	return nil
}

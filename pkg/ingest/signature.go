// Package ingest classifies inbound board events and owns the agent
// signature that marks system-authored comments.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// signaturePrefix is the fixed token inside the hidden HTML comment placed at
// the top of every outbound comment. The per-message UUID follows it.
const signaturePrefix = "AI_AGENT_SIGNATURE_"

var signatureRe = regexp.MustCompile(`<!--\s*` + signaturePrefix + `[0-9a-fA-F-]{36}\s*-->`)

// Sign wraps a comment body with the hidden signature line and the visible
// footer. The signature keeps the system from reacting to its own comments;
// the footer identifies the automation to humans.
func Sign(body, agentName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<!-- %s%s -->\n", signaturePrefix, uuid.New().String())
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n---\n_Posted automatically by %s._\n", agentName)
	return b.String()
}

// IsAgentComment reports whether text carries the agent signature anywhere.
// Board providers sometimes strip leading HTML comments into the rendered
// body, so the whole text is scanned, not just the first line.
func IsAgentComment(text string) bool {
	return signatureRe.MatchString(text)
}

// StripSignature removes the signature line and footer from a signed body,
// returning the human-visible content. Unsigned text is returned unchanged.
func StripSignature(text string) string {
	out := signatureRe.ReplaceAllString(text, "")
	if i := strings.LastIndex(out, "\n---\n_Posted automatically by "); i >= 0 {
		out = out[:i]
	}
	return strings.TrimSpace(out)
}

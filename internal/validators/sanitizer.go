package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer strips or restricts markup in user content using
// bluemonday policies. It is safe for concurrent use.
type ContentSanitizer struct {
	strict *bluemonday.Policy
	rich   *bluemonday.Policy
}

// NewContentSanitizer builds a strict policy for plain text fields (comments,
// guest names, contact messages) and a UGC policy for admin-authored HTML
// (news and about content).
func NewContentSanitizer() *ContentSanitizer {
	return &ContentSanitizer{
		strict: bluemonday.StrictPolicy(),
		rich:   bluemonday.UGCPolicy(),
	}
}

// maxPlainTextPasses bounds the sanitize and unescape loop of PlainText.
const maxPlainTextPasses = 8

// PlainText removes every tag. Entities escaped by the policy are decoded
// again because the result is served as JSON text, not HTML. Decoding can
// surface markup that was entity-encoded in the input, so the two steps
// repeat until the text stops changing. Input that never settles is returned
// in its escaped form.
func (s *ContentSanitizer) PlainText(in string) string {
	out := in
	for range maxPlainTextPasses {
		next := html.UnescapeString(s.strict.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	return strings.TrimSpace(s.strict.Sanitize(out))
}

// RichText keeps formatting tags and safe links and drops scripts, styles and
// event handler attributes.
func (s *ContentSanitizer) RichText(in string) string {
	return s.rich.Sanitize(in)
}

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentSanitizer_PlainText(t *testing.T) {
	s := NewContentSanitizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Great article!", want: "Great article!"},
		{name: "tags removed", in: "<b>bold</b> move", want: "bold move"},
		{name: "script dropped with content", in: "<script>alert(1)</script>hi", want: "hi"},
		{name: "entities kept as text", in: "Tom & Jerry's \"plan\"", want: "Tom & Jerry's \"plan\""},
		{name: "trimmed", in: "  spaced  ", want: "spaced"},
		{name: "encoded script dropped", in: "&lt;script&gt;alert(1)&lt;/script&gt;hi", want: "hi"},
		{name: "encoded tag dropped", in: "&lt;img src=x onerror=alert(1)&gt;", want: ""},
		{name: "double encoded tag dropped", in: "&amp;lt;b&amp;gt;bold&amp;lt;/b&amp;gt;", want: "bold"},
		{name: "comparison kept", in: "5 < 6 & 7 > 2", want: "5 < 6 & 7 > 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.PlainText(tt.in))
		})
	}
}

func TestContentSanitizer_RichText(t *testing.T) {
	s := NewContentSanitizer()

	out := s.RichText(`<p onclick="x()">Hello <strong>world</strong><script>evil()</script></p>`)

	assert.Contains(t, out, "<strong>world</strong>")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "script")
}

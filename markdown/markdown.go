// Package markdown renders blog post content as sanitized HTML, exposed as a
// templ component for use inside page templates.
package markdown

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	// Raw HTML passes through goldmark, so everything is sanitized after
	// rendering. UGCPolicy keeps the usual article markup and images.
	policy = bluemonday.UGCPolicy()
)

// Render converts markdown to sanitized HTML.
func Render(input string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(input), &buf); err != nil {
		return policy.Sanitize(input)
	}
	return policy.Sanitize(buf.String())
}

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Render(content))
		return err
	})
}

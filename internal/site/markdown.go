package site

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// newMarkdown returns the goldmark converter used for document pages.
// Raw HTML in the source is dropped.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// renderMarkdown converts src and returns the HTML body along with the text
// of the first "# " heading, or fallback when there is none.
func renderMarkdown(md goldmark.Markdown, src []byte, fallback string) (template.HTML, string, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), extractTitle(string(src), fallback), nil
}

// extractTitle pulls the first # heading from markdown content, or falls back to the given title.
func extractTitle(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return fallback
}

package report

import (
	"fmt"
	"os"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// WriteHTML renders the Markdown report body as a standalone HTML page.
func (w *Writer) WriteHTML(md string, path string) error {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Title: w.title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	out := markdown.Render(doc, renderer)

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}
	return nil
}

package render

import (
	"html"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/answer"
)

// HTML writes one <section> per answer section. Bullet groups become a
// heading and list, nested groups a collapsible <details> block. Inline
// markdown in text and points is rendered; anything that would render as a
// block element is escaped instead.
func HTML(w io.Writer, sections []answer.Section) error {
	var b strings.Builder

	b.WriteString(`<div class="structured-answer">` + "\n")
	for _, section := range sections {
		kind := string(section.Kind())
		if kind == "" {
			kind = "generic"
		}

		b.WriteString(`<section data-kind="` + html.EscapeString(kind) + `">` + "\n")
		b.WriteString("<h3>" + html.EscapeString(section.Title) + "</h3>\n")

		for _, n := range section.Content {
			switch v := n.(type) {
			case *answer.Text:
				b.WriteString("<p>" + inlineHTML(v.Text) + "</p>\n")
			case *answer.Bullet:
				b.WriteString(`<div class="bullet">` + "\n")
				b.WriteString("<h4>" + html.EscapeString(v.Title) + "</h4>\n")
				writeList(&b, v.Points)
				b.WriteString("</div>\n")
			case *answer.Nested:
				b.WriteString(`<details class="nested">` + "\n")
				b.WriteString("<summary>" + html.EscapeString(v.Title) + "</summary>\n")
				writeList(&b, v.Points)
				b.WriteString("</details>\n")
			}
		}

		b.WriteString("</section>\n")
	}
	b.WriteString("</div>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return oops.
			Code("WRITE_FAILED").
			Wrapf(err, "writing html output")
	}

	return nil
}

func writeList(b *strings.Builder, points []string) {
	b.WriteString("<ul>\n")
	for _, p := range points {
		b.WriteString("<li>" + inlineHTML(p) + "</li>\n")
	}
	b.WriteString("</ul>\n")
}

func inlineHTML(text string) string {
	if text == "" {
		return ""
	}

	// Parsers carry state, so each call gets its own.
	p := parser.NewWithExtensions(parser.CommonExtensions &^ parser.MathJax)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.NofollowLinks})

	out := strings.TrimSpace(string(markdown.ToHTML([]byte(text), p, r)))
	inner, ok := strings.CutPrefix(out, "<p>")
	if !ok {
		return html.EscapeString(text)
	}
	inner, ok = strings.CutSuffix(inner, "</p>")
	if !ok || strings.Contains(inner, "<p>") {
		return html.EscapeString(text)
	}

	return inner
}

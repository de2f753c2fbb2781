package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/answer"
)

type TextOptions struct {
	Color bool
}

type textStyles struct {
	title  *color.Color
	topic  *color.Color
	nested *color.Color
	icon   *color.Color
}

func newTextStyles(enabled bool) textStyles {
	s := textStyles{
		title:  color.New(color.Bold),
		topic:  color.New(color.FgMagenta, color.Bold),
		nested: color.New(color.Faint),
		icon:   color.New(color.FgCyan),
	}

	for _, c := range []*color.Color{s.title, s.topic, s.nested, s.icon} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// Text writes an indented terminal view: one block per section, points as
// bullets under their group title, nested groups one level deeper.
func Text(w io.Writer, sections []answer.Section, opts TextOptions) error {
	s := newTextStyles(opts.Color)
	tw := &textWriter{w: w}

	for i, section := range sections {
		if i > 0 {
			tw.line("")
		}

		tw.line("%s %s", s.icon.Sprint(section.Kind().Icon()), s.title.Sprint(section.Title))

		for _, n := range section.Content {
			switch v := n.(type) {
			case *answer.Text:
				tw.line("  %s", v.Text)
			case *answer.Bullet:
				tw.line("  %s", s.topic.Sprint(v.Title))
				for _, p := range v.Points {
					tw.line("    • %s", p)
				}
			case *answer.Nested:
				tw.line("    %s %s", s.nested.Sprint("▸"), s.topic.Sprint(v.Title))
				for _, p := range v.Points {
					tw.line("        • %s", p)
				}
			}
		}
	}

	if tw.err != nil {
		return oops.
			Code("WRITE_FAILED").
			Wrapf(tw.err, "writing text output")
	}

	return nil
}

// textWriter remembers the first write error so callers check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

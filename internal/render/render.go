// Package render writes parsed answers as terminal text, HTML or JSON.
package render

import (
	"encoding/json"
	"io"

	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/answer"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHTML = "html"
)

func Formats() []string {
	return []string{FormatText, FormatJSON, FormatHTML}
}

type Options struct {
	Format string
	Color  bool
}

// Write renders sections in the requested format.
func Write(w io.Writer, sections []answer.Section, opts Options) error {
	switch opts.Format {
	case FormatText, "":
		return Text(w, sections, TextOptions{Color: opts.Color})
	case FormatJSON:
		return JSON(w, sections)
	case FormatHTML:
		return HTML(w, sections)
	default:
		return oops.
			Code("INVALID_ARGS").
			With("format", opts.Format).
			Hint("Supported formats: text, json, html").
			Errorf("unknown output format %q", opts.Format)
	}
}

func JSON(w io.Writer, sections []answer.Section) error {
	if sections == nil {
		sections = []answer.Section{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(sections); err != nil {
		return oops.
			Code("JSON_ERROR").
			Wrapf(err, "encoding sections")
	}

	return nil
}

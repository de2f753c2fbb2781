package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/question"
	"github.com/g5becks/desk/internal/search"
)

const maxQuestionWidth = 60

type ListOptions struct {
	JSON    bool
	Verbose bool
}

// RenderQuestionPage writes one page of questions followed by the page links.
func RenderQuestionPage(w io.Writer, page question.PageData, opts ListOptions) error {
	if opts.JSON {
		return renderJSON(w, page)
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)

	if opts.Verbose {
		writer.AppendHeader(table.Row{"ID", "STATUS", "QUESTION", "ASKED", "FEEDBACK"})
	} else {
		writer.AppendHeader(table.Row{"ID", "STATUS", "QUESTION", "ASKED"})
	}

	for _, q := range page.Questions {
		row := table.Row{
			q.ID,
			string(q.Status),
			truncate(q.Question, maxQuestionWidth),
			formatAsked(q.Timestamp),
		}
		if opts.Verbose {
			row = append(row, renderFeedback(q.Feedback))
		}
		writer.AppendRow(row)
	}

	if len(page.Questions) == 0 {
		writer.AppendFooter(table.Row{"", "", "no questions found"})
	}

	writer.Render()

	if footer := pageFooter(page); footer != "" {
		if _, err := fmt.Fprintln(w, footer); err != nil {
			return oops.
				Code("WRITE_FAILED").
				Wrapf(err, "writing page footer")
		}
	}

	return nil
}

// RenderSearchResults writes fuzzy search matches as a table.
func RenderSearchResults(w io.Writer, results []search.Result, asJSON bool) error {
	if asJSON {
		if results == nil {
			results = []search.Result{}
		}
		return renderJSON(w, results)
	}

	writer := table.NewWriter()
	writer.SetOutputMirror(w)
	writer.SetStyle(table.StyleRounded)
	writer.AppendHeader(table.Row{"ID", "QUESTION", "MATCH", "SCORE"})

	for _, r := range results {
		writer.AppendRow(table.Row{
			r.ID,
			truncate(r.Question, maxQuestionWidth),
			fmt.Sprintf("%s: %s", r.MatchField, r.MatchValue),
			r.Score,
		})
	}

	writer.Render()
	return nil
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return oops.
			Code("JSON_ERROR").
			Wrapf(err, "encoding list output")
	}

	return nil
}

// pageFooter renders the links from question.PageWindow, e.g.
// "page 2 of 9: 1 [2] 3 4 5 ... 9".
func pageFooter(page question.PageData) string {
	window := question.PageWindow(page.CurrentPage, page.TotalPages)
	if len(window.Pages) == 0 {
		return ""
	}

	links := make([]string, 0, len(window.Pages)+2)
	for _, p := range window.Pages {
		if p == page.CurrentPage {
			links = append(links, "["+strconv.Itoa(p)+"]")
			continue
		}
		links = append(links, strconv.Itoa(p))
	}
	if window.ShowLast {
		links = append(links, "...", strconv.Itoa(window.Last))
	}

	return fmt.Sprintf("page %d of %d: %s", page.CurrentPage, page.TotalPages, strings.Join(links, " "))
}

func renderFeedback(f *question.Feedback) string {
	if f == nil {
		return ""
	}

	out := string(f.Rating)
	if f.Comment != "" {
		if out != "" {
			out += ", "
		}
		out += strconv.Quote(truncate(f.Comment, 30))
	}
	return out
}

func formatAsked(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

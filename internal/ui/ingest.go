package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/g5becks/desk/internal/ingest"
)

type styles struct {
	green *color.Color
	red   *color.Color
	dim   *color.Color
	bold  *color.Color
}

func newStyles() styles {
	return styles{
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
		dim:   color.New(color.Faint),
		bold:  color.New(color.Bold),
	}
}

// IngestPrinter renders ingest events to stderr with colored output.
type IngestPrinter struct {
	w  io.Writer
	mu sync.Mutex
	s  styles
}

// NewIngestPrinter creates an IngestPrinter that writes to stderr.
func NewIngestPrinter() *IngestPrinter {
	return NewIngestPrinterWithWriter(os.Stderr)
}

// NewIngestPrinterWithWriter creates an IngestPrinter that writes to the given writer.
func NewIngestPrinterWithWriter(w io.Writer) *IngestPrinter {
	return &IngestPrinter{
		w: w,
		s: newStyles(),
	}
}

// HandleEvent is the callback wired into ingest.Options.OnEvent.
func (p *IngestPrinter) HandleEvent(e ingest.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case ingest.EventStart:
		fmt.Fprintf(p.w, "%s loading %s...\n",
			p.s.dim.Sprint("⟳"),
			p.s.bold.Sprint(e.Ref),
		)

	case ingest.EventDone:
		p.handleDone(e)
	}
}

func (p *IngestPrinter) handleDone(e ingest.Event) {
	if e.Err != nil {
		fmt.Fprintf(p.w, "%s %s: %s\n",
			p.s.red.Sprint("✗"),
			p.s.bold.Sprint(e.Ref),
			e.Err,
		)
		return
	}

	if e.Result == nil {
		return
	}

	sections := 0
	for _, doc := range e.Result.Documents {
		sections += doc.Stats.Sections
	}

	fmt.Fprintf(p.w, "%s %s %s\n",
		p.s.green.Sprint("✓"),
		p.s.bold.Sprint(e.Ref),
		p.s.dim.Sprint(formatCounts(len(e.Result.Documents), sections)),
	)
}

func formatCounts(documents int, sections int) string {
	switch {
	case documents == 0:
		return "(no documents)"
	case documents == 1:
		return fmt.Sprintf("(1 document, %d section(s))", sections)
	default:
		return fmt.Sprintf("(%d documents, %d section(s))", documents, sections)
	}
}

// PrintSummary renders a final summary line after an ingest run.
func (p *IngestPrinter) PrintSummary(r *ingest.RunResult, imported int) {
	if r == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w)

	parts := fmt.Sprintf("import complete: %d source(s), %d document(s), %d question(s) added",
		r.Sources,
		r.Documents,
		imported,
	)

	if r.Errors > 0 {
		parts += fmt.Sprintf(", %s",
			p.s.red.Sprintf("%d failed", r.Errors),
		)
	}

	fmt.Fprintln(p.w, parts)
}

package ui_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/g5becks/desk/internal/answer"
	"github.com/g5becks/desk/internal/ingest"
	"github.com/g5becks/desk/internal/ui"
)

var errMock = errors.New("mock error")

func TestHandleEventStart(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewIngestPrinterWithWriter(&buf)

	p.HandleEvent(ingest.Event{Kind: ingest.EventStart, Ref: "answers/*.md"})

	out := buf.String()
	if !strings.Contains(out, "answers/*.md") {
		t.Errorf("start event output missing ref, got: %q", out)
	}
	if !strings.Contains(out, "loading") {
		t.Errorf("start event output missing 'loading', got: %q", out)
	}
}

func TestHandleEventDone(t *testing.T) {
	tests := []struct {
		name  string
		event ingest.Event
		want  []string
	}{
		{
			name: "single document",
			event: ingest.Event{
				Kind: ingest.EventDone,
				Ref:  "a.md",
				Result: &ingest.Result{
					Ref:       "a.md",
					Documents: []ingest.Parsed{{Name: "a.md", Stats: answer.Stats{Sections: 4}}},
				},
			},
			want: []string{"✓", "a.md", "(1 document, 4 section(s))"},
		},
		{
			name: "many documents",
			event: ingest.Event{
				Kind: ingest.EventDone,
				Ref:  "*.md",
				Result: &ingest.Result{
					Ref: "*.md",
					Documents: []ingest.Parsed{
						{Name: "a.md", Stats: answer.Stats{Sections: 2}},
						{Name: "b.md", Stats: answer.Stats{Sections: 3}},
					},
				},
			},
			want: []string{"(2 documents, 5 section(s))"},
		},
		{
			name:  "failure",
			event: ingest.Event{Kind: ingest.EventDone, Ref: "missing.md", Err: errMock},
			want:  []string{"✗", "missing.md", "mock error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ui.NewIngestPrinterWithWriter(&buf).HandleEvent(tt.event)

			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q, got: %q", want, out)
				}
			}
		})
	}
}

func TestHandleEventDoneWithoutResult(t *testing.T) {
	var buf bytes.Buffer
	ui.NewIngestPrinterWithWriter(&buf).HandleEvent(ingest.Event{Kind: ingest.EventDone, Ref: "x"})

	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewIngestPrinterWithWriter(&buf)

	p.PrintSummary(&ingest.RunResult{Sources: 3, Documents: 4, Errors: 1}, 4)

	out := buf.String()
	for _, want := range []string{"3 source(s)", "4 document(s)", "4 question(s) added", "1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q, got: %q", want, out)
		}
	}
}

func TestPrintSummaryNil(t *testing.T) {
	var buf bytes.Buffer
	ui.NewIngestPrinterWithWriter(&buf).PrintSummary(nil, 0)

	if buf.Len() != 0 {
		t.Errorf("expected no output for nil result, got: %q", buf.String())
	}
}

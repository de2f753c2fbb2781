package ingest_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/g5becks/desk/internal/ingest"
	"github.com/g5becks/desk/internal/source"
)

var errMissing = errors.New("missing")

type fakeLoader struct {
	docs     map[string][]source.Document
	delay    time.Duration
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (f *fakeLoader) Load(_ context.Context, ref string) ([]source.Document, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)

	for {
		peak := f.peak.Load()
		if n <= peak || f.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	time.Sleep(f.delay)

	docs, ok := f.docs[ref]
	if !ok {
		return nil, errMissing
	}
	return docs, nil
}

func TestRunParsesInInputOrder(t *testing.T) {
	loader := &fakeLoader{docs: map[string][]source.Document{
		"a": {{Name: "a.md", Content: "1. **Intro**\nHello"}},
		"b": {
			{Name: "b1.md", Content: "Just text"},
			{Name: "b2.md", Content: "1. **Steps**\n- **Setup**:\n- one"},
		},
	}}

	run, err := ingest.Run(context.Background(), loader, []string{"b", "a"}, ingest.Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if run.Sources != 2 || run.Documents != 3 || run.Errors != 0 {
		t.Errorf("run = %+v", run)
	}

	if run.Results[0].Ref != "b" || run.Results[1].Ref != "a" {
		t.Fatalf("results out of order: %q, %q", run.Results[0].Ref, run.Results[1].Ref)
	}

	b2 := run.Results[0].Documents[1]
	if b2.Stats.Bullets != 1 || b2.Stats.Points != 1 {
		t.Errorf("b2 stats = %+v", b2.Stats)
	}

	if got := run.Results[1].Documents[0].Sections[0].Title; got != "Intro" {
		t.Errorf("a title = %q, want Intro", got)
	}
}

func TestRunReportsFailuresWithoutStopping(t *testing.T) {
	loader := &fakeLoader{docs: map[string][]source.Document{
		"ok": {{Name: "ok.md", Content: "text"}},
	}}

	run, err := ingest.Run(context.Background(), loader, []string{"bad", "ok"}, ingest.Options{})
	if err == nil {
		t.Fatal("Run() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "1 source(s) failed") {
		t.Errorf("error = %q", err.Error())
	}

	if run == nil {
		t.Fatal("run = nil, want partial result")
	}
	if run.Errors != 1 || run.Documents != 1 {
		t.Errorf("run = %+v", run)
	}
	if !errors.Is(run.Results[0].Err, errMissing) {
		t.Errorf("first result error = %v", run.Results[0].Err)
	}
}

func TestRunLimitsParallelism(t *testing.T) {
	docs := map[string][]source.Document{}
	var refs []string
	for _, r := range "abcdefgh" {
		ref := string(r)
		refs = append(refs, ref)
		docs[ref] = []source.Document{{Name: ref, Content: ref}}
	}

	loader := &fakeLoader{docs: docs, delay: 10 * time.Millisecond}

	if _, err := ingest.Run(context.Background(), loader, refs, ingest.Options{MaxParallel: 2}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if peak := loader.peak.Load(); peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestRunEmitsEvents(t *testing.T) {
	loader := &fakeLoader{docs: map[string][]source.Document{
		"a": {{Name: "a", Content: "a"}},
	}}

	var (
		mu     sync.Mutex
		starts int
		dones  int
	)
	onEvent := func(e ingest.Event) {
		mu.Lock()
		defer mu.Unlock()

		switch e.Kind {
		case ingest.EventStart:
			starts++
		case ingest.EventDone:
			dones++
			if e.Ref == "a" && (e.Result == nil || len(e.Result.Documents) != 1) {
				t.Errorf("done event result = %+v", e.Result)
			}
			if e.Ref == "b" && e.Err == nil {
				t.Error("done event for b has no error")
			}
		}
	}

	_, _ = ingest.Run(context.Background(), loader, []string{"a", "b"}, ingest.Options{OnEvent: onEvent})

	if starts != 2 || dones != 2 {
		t.Errorf("starts = %d, dones = %d, want 2 each", starts, dones)
	}
}

func TestRunWithoutLoader(t *testing.T) {
	if _, err := ingest.Run(context.Background(), nil, []string{"a"}, ingest.Options{}); err == nil {
		t.Fatal("Run() error = nil, want error")
	}
}

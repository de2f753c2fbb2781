// Package ingest loads and parses many answer sources concurrently.
package ingest

import (
	"context"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"

	"github.com/g5becks/desk/internal/answer"
	"github.com/g5becks/desk/internal/source"
)

const DefaultMaxParallel = 3

type EventKind int

const (
	EventStart EventKind = iota
	EventDone
)

// Event reports progress for a single ref. OnEvent may be called from
// several goroutines at once.
type Event struct {
	Kind   EventKind
	Ref    string
	Result *Result
	Err    error
}

type Loader interface {
	Load(ctx context.Context, ref string) ([]source.Document, error)
}

type Options struct {
	MaxParallel int
	OnEvent     func(Event)
}

// Parsed is one loaded document and its section tree.
type Parsed struct {
	Name     string           `json:"name"`
	Content  string           `json:"-"`
	Sections []answer.Section `json:"sections"`
	Stats    answer.Stats     `json:"stats"`
}

type Result struct {
	Ref       string   `json:"ref"`
	Documents []Parsed `json:"documents,omitempty"`
	Err       error    `json:"-"`
}

type RunResult struct {
	Results   []Result `json:"results"`
	Sources   int      `json:"sources"`
	Documents int      `json:"documents"`
	Errors    int      `json:"errors"`
}

// Run loads every ref and parses what it finds. Results keep the order of
// refs. A failing ref does not stop the others; the returned error reports
// how many failed.
func Run(ctx context.Context, loader Loader, refs []string, opts Options) (*RunResult, error) {
	if loader == nil {
		return nil, oops.
			Code("INGEST_FAILED").
			Errorf("loader is required")
	}

	maxParallel := opts.MaxParallel
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}

	emit := opts.OnEvent
	if emit == nil {
		emit = func(Event) {}
	}

	results := make([]Result, len(refs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)

	for i, ref := range refs {
		group.Go(func() error {
			emit(Event{Kind: EventStart, Ref: ref})

			result := Result{Ref: ref}
			docs, err := loader.Load(groupCtx, ref)
			if err != nil {
				result.Err = err
			} else {
				result.Documents = parseAll(docs)
			}

			results[i] = result
			emit(Event{Kind: EventDone, Ref: ref, Result: &results[i], Err: result.Err})
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, oops.Wrapf(err, "waiting for ingest workers")
	}

	run := &RunResult{
		Results: results,
		Sources: len(refs),
	}
	for _, r := range results {
		if r.Err != nil {
			run.Errors++
			continue
		}
		run.Documents += len(r.Documents)
	}

	if run.Errors > 0 {
		return run, oops.
			Code("INGEST_FAILED").
			With("failed_sources", run.Errors).
			Errorf("%d source(s) failed to load", run.Errors)
	}

	return run, nil
}

func parseAll(docs []source.Document) []Parsed {
	parsed := make([]Parsed, 0, len(docs))
	for _, doc := range docs {
		sections := answer.Parse(doc.Content)
		parsed = append(parsed, Parsed{
			Name:     doc.Name,
			Content:  doc.Content,
			Sections: sections,
			Stats:    answer.Summarize(sections),
		})
	}
	return parsed
}

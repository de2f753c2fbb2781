package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/answer"
	"github.com/g5becks/desk/internal/question"
)

// Result is the best match found for one question.
type Result struct {
	ID         string          `json:"id"`
	Question   string          `json:"question"`
	Status     question.Status `json:"status"`
	MatchField string          `json:"match_field"`
	MatchValue string          `json:"match_value"`
	Score      int             `json:"score"`
}

type Options struct {
	Query string
	Limit int
}

type indexEntry struct {
	q          question.Question
	matchField string
	matchValue string
}

type searchIndex struct {
	entries []indexEntry
}

func (s searchIndex) String(i int) string {
	return s.entries[i].matchValue
}

func (s searchIndex) Len() int {
	return len(s.entries)
}

// Questions fuzzy-matches the query against question text, section titles
// and bullet titles of every stored answer.
func Questions(questions []question.Question, opts Options) ([]Result, error) {
	query := strings.TrimSpace(opts.Query)
	if query == "" {
		return nil, oops.
			Code("INVALID_ARGS").
			Hint("Provide a non-empty search query").
			Errorf("search query cannot be empty")
	}

	index := searchIndex{entries: buildEntries(questions)}
	matches := fuzzy.FindFrom(query, index)

	deduped := make(map[string]Result)
	for _, match := range matches {
		if match.Score < 0 {
			continue
		}
		entry := index.entries[match.Index]

		if existing, exists := deduped[entry.q.ID]; !exists || match.Score > existing.Score {
			deduped[entry.q.ID] = Result{
				ID:         entry.q.ID,
				Question:   entry.q.Question,
				Status:     entry.q.Status,
				MatchField: entry.matchField,
				MatchValue: entry.matchValue,
				Score:      match.Score,
			}
		}
	}

	results := make([]Result, 0, len(deduped))
	for _, result := range deduped {
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, nil
}

func buildEntries(questions []question.Question) []indexEntry {
	var entries []indexEntry

	for _, q := range questions {
		entries = append(entries, indexEntry{q: q, matchField: "question", matchValue: q.Question})

		for _, section := range q.Sections() {
			entries = append(entries, indexEntry{q: q, matchField: "section", matchValue: section.Title})

			for _, n := range section.Content {
				switch v := n.(type) {
				case *answer.Bullet:
					entries = append(entries, indexEntry{q: q, matchField: "topic", matchValue: v.Title})
				case *answer.Nested:
					entries = append(entries, indexEntry{q: q, matchField: "topic", matchValue: v.Title})
				}
			}
		}
	}

	return entries
}

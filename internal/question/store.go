package question

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/oops"
)

const DefaultPerPage = 5

// Store holds the questions a session browses together with its search and
// pagination state. It is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	questions   []Question
	searchTerm  string
	currentPage int
	perPage     int

	// saveMu orders Save calls so the newest snapshot is the last written.
	saveMu sync.Mutex
}

type PageData struct {
	Questions   []Question `json:"questions"`
	TotalPages  int        `json:"total_pages"`
	CurrentPage int        `json:"current_page"`
	PerPage     int        `json:"per_page"`
	Total       int        `json:"total"`
	SearchTerm  string     `json:"search_term,omitempty"`
}

func NewStore(questions []Question, perPage int) *Store {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	return &Store{
		questions:   slices.Clone(questions),
		currentPage: 1,
		perPage:     perPage,
	}
}

// SetSearchTerm filters questions by a case-insensitive substring of the
// question text and moves back to the first page.
func (s *Store) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchTerm = term
	s.currentPage = 1
}

func (s *Store) SearchTerm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.searchTerm
}

func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentPage = max(page, 1)
}

// Page returns the questions on the current page of the filtered list.
func (s *Store) Page() PageData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filtered()
	start := min((s.currentPage-1)*s.perPage, len(filtered))
	end := min(start+s.perPage, len(filtered))

	return PageData{
		Questions:   slices.Clone(filtered[start:end]),
		TotalPages:  (len(filtered) + s.perPage - 1) / s.perPage,
		CurrentPage: s.currentPage,
		PerPage:     s.perPage,
		Total:       len(filtered),
		SearchTerm:  s.searchTerm,
	}
}

func (s *Store) filtered() []Question {
	if s.searchTerm == "" {
		return s.questions
	}

	term := strings.ToLower(s.searchTerm)
	var out []Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.Question), term) {
			out = append(out, q)
		}
	}
	return out
}

func (s *Store) Get(id string) (Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.index(id); i >= 0 {
		return s.questions[i], true
	}
	return Question{}, false
}

// All returns every question in insertion order.
func (s *Store) All() []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.questions)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.questions)
}

// Add appends q, assigning the next free id when q.ID is empty.
func (s *Store) Add(q Question) Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(q)
}

func (s *Store) add(q Question) Question {
	if q.ID == "" || s.index(q.ID) >= 0 {
		q.ID = s.nextID()
	}
	if q.Timestamp.IsZero() {
		q.Timestamp = time.Now().UTC()
	}
	if q.Status == "" {
		q.Status = StatusAnswered
	}

	s.questions = append(s.questions, q)
	return q
}

// Generate records a new answered question with a templated answer.
func (s *Store) Generate(ctx context.Context, text string) (Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Question{}, oops.
			Code("INVALID_ARGS").
			Hint("Provide the question to answer").
			Errorf("question cannot be empty")
	}

	if err := ctx.Err(); err != nil {
		return Question{}, oops.
			Code("CANCELLED").
			Wrapf(err, "generating answer")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.add(Question{
		Question: text,
		Answer:   GeneratedAnswer(text),
		Status:   StatusAnswered,
	}), nil
}

// Rate sets the feedback rating of a question.
func (s *Store) Rate(id string, rating Rating) (Question, error) {
	return s.SetFeedback(id, &rating, nil)
}

// Comment sets the feedback comment of a question.
func (s *Store) Comment(id string, comment string) (Question, error) {
	return s.SetFeedback(id, nil, &comment)
}

// SetFeedback updates the rating and comment of a question in one step.
// A nil argument leaves that field unchanged.
func (s *Store) SetFeedback(id string, rating *Rating, comment *string) (Question, error) {
	if rating == nil && comment == nil {
		return Question{}, oops.
			Code("INVALID_ARGS").
			With("id", id).
			Hint("Provide a rating, a comment, or both").
			Errorf("no feedback given")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return Question{}, NotFound(id)
	}

	// Copy so questions handed out earlier keep their feedback.
	next := Feedback{}
	if s.questions[i].Feedback != nil {
		next = *s.questions[i].Feedback
	}
	if rating != nil {
		next.Rating = *rating
	}
	if comment != nil {
		next.Comment = *comment
	}
	s.questions[i].Feedback = &next

	return s.questions[i], nil
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.questions, func(q Question) bool { return q.ID == id })
}

func (s *Store) nextID() string {
	n := len(s.questions) + 1
	for s.index(strconv.Itoa(n)) >= 0 {
		n++
	}
	return strconv.Itoa(n)
}

// NotFound is the error for an unknown question id.
func NotFound(id string) error {
	return oops.
		Code("QUESTION_NOT_FOUND").
		With("id", id).
		Hint("Run 'desk list' to see available questions").
		Errorf("question %q not found", id)
}

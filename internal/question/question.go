package question

import (
	"time"

	"github.com/g5becks/desk/internal/answer"
)

type Status string

const (
	StatusAnswered Status = "answered"
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
)

type Rating string

const (
	RatingNone       Rating = ""
	RatingHelpful    Rating = "helpful"
	RatingNotHelpful Rating = "not-helpful"
)

// ParseRating accepts the two user-facing ratings.
func ParseRating(s string) (Rating, bool) {
	switch r := Rating(s); r {
	case RatingHelpful, RatingNotHelpful:
		return r, true
	default:
		return RatingNone, false
	}
}

type Feedback struct {
	Rating  Rating `json:"rating"`
	Comment string `json:"comment"`
}

type Question struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`
	Feedback  *Feedback `json:"feedback,omitempty"`
}

// Sections parses the stored answer text.
func (q Question) Sections() []answer.Section {
	return answer.Parse(q.Answer)
}

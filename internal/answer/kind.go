package answer

import "strings"

// SectionKind classifies a section title against the headings support
// answers conventionally use.
type SectionKind string

const (
	KindIntroduction         SectionKind = "introduction"
	KindIssueAnalysis        SectionKind = "issue analysis"
	KindTroubleshootingSteps SectionKind = "troubleshooting steps"
	KindRootCauseAnalysis    SectionKind = "root cause analysis"
	KindEscalation           SectionKind = "escalation and handling"
	KindGeneric              SectionKind = ""
)

// KindOf matches title case-insensitively against the known section kinds.
func KindOf(title string) SectionKind {
	switch kind := SectionKind(strings.ToLower(title)); kind {
	case KindIntroduction, KindIssueAnalysis, KindTroubleshootingSteps, KindRootCauseAnalysis, KindEscalation:
		return kind
	default:
		return KindGeneric
	}
}

func (s Section) Kind() SectionKind {
	return KindOf(s.Title)
}

// Icon returns a single-glyph marker for the kind.
func (k SectionKind) Icon() string {
	switch k {
	case KindIntroduction:
		return "📖"
	case KindIssueAnalysis:
		return "❓"
	case KindTroubleshootingSteps:
		return "⚙"
	case KindRootCauseAnalysis:
		return "⚠"
	case KindEscalation:
		return "✔"
	default:
		return "▾"
	}
}

// IsUnstructured reports whether sections hold nothing but free text, that
// is a single default section made only of Text nodes.
func IsUnstructured(sections []Section) bool {
	if len(sections) != 1 || sections[0].Title != DefaultSectionTitle {
		return false
	}

	for _, n := range sections[0].Content {
		if n.Type() != NodeTypeText {
			return false
		}
	}

	return true
}

type Stats struct {
	Sections int `json:"sections"`
	Text     int `json:"text"`
	Bullets  int `json:"bullets"`
	Nested   int `json:"nested"`
	Points   int `json:"points"`
}

func Summarize(sections []Section) Stats {
	stats := Stats{Sections: len(sections)}

	for _, s := range sections {
		for _, n := range s.Content {
			switch v := n.(type) {
			case *Text:
				stats.Text++
			case *Bullet:
				stats.Bullets++
				stats.Points += len(v.Points)
			case *Nested:
				stats.Nested++
				stats.Points += len(v.Points)
			}
		}
	}

	return stats
}

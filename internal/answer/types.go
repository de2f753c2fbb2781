package answer

import (
	"encoding/json"

	"github.com/samber/oops"
)

// DefaultSectionTitle names the section opened for text that appears before
// any numbered heading.
const DefaultSectionTitle = "Information"

type NodeType string

const (
	NodeTypeText   NodeType = "text"
	NodeTypeBullet NodeType = "bullet"
	NodeTypeNested NodeType = "nested"
)

// Node is one content item inside a Section. The set of implementations is
// closed: *Text, *Bullet and *Nested.
type Node interface {
	Type() NodeType
	node()
}

// Text is a plain paragraph line.
type Text struct {
	Text string
}

// Bullet is a titled group of flat list items.
type Bullet struct {
	Title  string
	Points []string
}

// Nested is a titled group of list items shown one level deeper than a
// Bullet. It is tracked separately while parsing, so points following a
// Nested header land in it even when a Bullet is also open.
type Nested struct {
	Title  string
	Points []string
}

func (*Text) Type() NodeType   { return NodeTypeText }
func (*Bullet) Type() NodeType { return NodeTypeBullet }
func (*Nested) Type() NodeType { return NodeTypeNested }

func (*Text) node()   {}
func (*Bullet) node() {}
func (*Nested) node() {}

// Section is one numbered top-level heading and the content below it.
type Section struct {
	Title   string `json:"title"`
	Content []Node `json:"-"`
}

type nodeJSON struct {
	Type   NodeType `json:"type"`
	Text   string   `json:"text,omitempty"`
	Title  string   `json:"title,omitempty"`
	Points []string `json:"points,omitempty"`
}

type sectionJSON struct {
	Title   string     `json:"title"`
	Content []nodeJSON `json:"content"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	out := sectionJSON{
		Title:   s.Title,
		Content: make([]nodeJSON, 0, len(s.Content)),
	}

	for _, n := range s.Content {
		switch v := n.(type) {
		case *Text:
			out.Content = append(out.Content, nodeJSON{Type: NodeTypeText, Text: v.Text})
		case *Bullet:
			out.Content = append(out.Content, nodeJSON{Type: NodeTypeBullet, Title: v.Title, Points: v.Points})
		case *Nested:
			out.Content = append(out.Content, nodeJSON{Type: NodeTypeNested, Title: v.Title, Points: v.Points})
		}
	}

	return json.Marshal(out)
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var in sectionJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	s.Title = in.Title
	s.Content = make([]Node, 0, len(in.Content))

	for i, n := range in.Content {
		switch n.Type {
		case NodeTypeText:
			s.Content = append(s.Content, &Text{Text: n.Text})
		case NodeTypeBullet:
			s.Content = append(s.Content, &Bullet{Title: n.Title, Points: n.Points})
		case NodeTypeNested:
			s.Content = append(s.Content, &Nested{Title: n.Title, Points: n.Points})
		default:
			return oops.
				Code("JSON_ERROR").
				With("section", in.Title).
				With("index", i).
				With("type", n.Type).
				Errorf("unknown content node type %q", n.Type)
		}
	}

	return nil
}

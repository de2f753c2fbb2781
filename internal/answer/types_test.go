package answer_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/g5becks/desk/internal/answer"
)

func TestSectionJSONShape(t *testing.T) {
	section := answer.Section{
		Title: "Steps",
		Content: []answer.Node{
			&answer.Text{Text: "intro"},
			&answer.Bullet{Title: "Setup", Points: []string{"a", "b"}},
			&answer.Nested{Title: "Deep", Points: []string{"c"}},
		},
	}

	data, err := json.Marshal(section)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"title":"Steps","content":[` +
		`{"type":"text","text":"intro"},` +
		`{"type":"bullet","title":"Setup","points":["a","b"]},` +
		`{"type":"nested","title":"Deep","points":["c"]}]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var decoded answer.Section
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !reflect.DeepEqual(decoded, section) {
		t.Errorf("Unmarshal() = %#v, want %#v", decoded, section)
	}
}

func TestSectionJSONEmptyContent(t *testing.T) {
	data, err := json.Marshal(answer.Section{Title: "Empty"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if string(data) != `{"title":"Empty","content":[]}` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestSectionJSONRejectsUnknownType(t *testing.T) {
	var s answer.Section
	err := json.Unmarshal([]byte(`{"title":"x","content":[{"type":"table"}]}`), &s)
	if err == nil {
		t.Fatal("Unmarshal() error = nil, want error")
	}

	if !strings.Contains(err.Error(), "table") {
		t.Errorf("error = %q, want it to name the node type", err.Error())
	}
}

func TestNodeTypes(t *testing.T) {
	tests := []struct {
		node answer.Node
		want answer.NodeType
	}{
		{&answer.Text{}, answer.NodeTypeText},
		{&answer.Bullet{}, answer.NodeTypeBullet},
		{&answer.Nested{}, answer.NodeTypeNested},
	}

	for _, tt := range tests {
		if got := tt.node.Type(); got != tt.want {
			t.Errorf("%T.Type() = %q, want %q", tt.node, got, tt.want)
		}
	}
}

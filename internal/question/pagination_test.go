package question_test

import (
	"reflect"
	"testing"

	"github.com/g5becks/desk/internal/question"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		want     []int
		showLast bool
	}{
		{"single page", 1, 1, nil, false},
		{"no pages", 1, 0, nil, false},
		{"few pages", 2, 3, []int{1, 2, 3}, false},
		{"five pages", 5, 5, []int{1, 2, 3, 4, 5}, false},
		{"start of many", 1, 10, []int{1, 2, 3, 4, 5}, true},
		{"third of many", 3, 10, []int{1, 2, 3, 4, 5}, true},
		{"window slides", 6, 10, []int{3, 4, 5, 6, 7}, true},
		{"near end", 8, 10, []int{5, 6, 7, 8, 9}, false},
		{"last page", 10, 10, []int{7, 8, 9, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := question.PageWindow(tt.current, tt.total)

			if !reflect.DeepEqual(got.Pages, tt.want) {
				t.Errorf("Pages = %v, want %v", got.Pages, tt.want)
			}
			if got.ShowLast != tt.showLast {
				t.Errorf("ShowLast = %v, want %v", got.ShowLast, tt.showLast)
			}
		})
	}
}

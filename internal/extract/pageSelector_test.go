package extract

import (
	"reflect"
	"testing"
)

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name       string
		requested  []int
		totalPages int
		expected   []int
	}{
		{"nil request selects all pages", nil, 3, []int{1, 2, 3}},
		{"empty request selects all pages", []int{}, 4, []int{1, 2, 3, 4}},
		{"single valid page", []int{2}, 3, []int{2}},
		{"order and duplicates preserved", []int{3, 1, 3}, 3, []int{3, 1, 3}},
		{"out of range entries dropped silently", []int{0, 1, 4, -2}, 3, []int{1}},
		{"all out of range yields empty", []int{99}, 3, []int{}},
		{"zero page document", nil, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolvePages(tt.requested, tt.totalPages)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("resolvePages(%v, %d) = %v; want %v", tt.requested, tt.totalPages, got, tt.expected)
			}
		})
	}
}

package dashboard

import "testing"

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no ratings", nil, 0},
		{"single rating", []int{4}, 4},
		{"whole average", []int{3, 5}, 4},
		{"rounds to one decimal", []int{4, 5, 5}, 4.7},
		{"rounds down", []int{1, 2, 2}, 1.7},
		{"all fives", []int{5, 5, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageRating(tt.ratings); got != tt.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}

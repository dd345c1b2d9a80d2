package quiz

import (
	"math"
	"testing"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

func TestScore(t *testing.T) {
	order := []entities.Statement{
		{ID: 1, IsTrue: true},
		{ID: 2, IsTrue: false},
		{ID: 3, IsTrue: true},
	}

	tests := []struct {
		name    string
		answers []bool
		want    int
	}{
		{"no answers", nil, 0},
		{"partial correct", []bool{true}, 1},
		{"partial wrong", []bool{false, true}, 0},
		{"all correct", []bool{true, false, true}, 3},
		{"mixed", []bool{true, true, true}, 2},
		{"extra answers ignored", []bool{true, false, true, true}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(order, tt.answers)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
			if got > len(tt.answers) {
				t.Errorf("score %d exceeds answers %d", got, len(tt.answers))
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 15, 0},
		{15, 15, 100},
		{7, 15, 47}, // 46.67
		{8, 15, 53}, // 53.33
		{1, 8, 13},  // 12.5 rounds up
		{3, 8, 38},  // 37.5 rounds up
		{1, 3, 33},  // 33.33
		{2, 3, 67},  // 66.67
		{5, 0, 0},   // empty bank
		{0, -1, 0},  // nonsense total
		{1e17, 1e17, 100},
		{5e16, 1e17, 50},
		{math.MaxInt, math.MaxInt, 100},
	}

	for _, tt := range tests {
		if got := Percentage(tt.score, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

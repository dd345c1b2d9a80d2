package quiz

import (
	"math"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

// Score counts answers that match the truth value of the statement at the
// same position. Answers beyond the end of order are ignored.
func Score(order []entities.Statement, answers []bool) int {
	score := 0
	for i, answer := range answers {
		if i >= len(order) {
			break
		}
		if answer == order[i].IsTrue {
			score++
		}
	}
	return score
}

// Percentage returns 100*score/total rounded half up. A non-positive total
// yields 0.
func Percentage(score, total int) int {
	if total <= 0 || score <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

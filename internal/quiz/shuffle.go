package quiz

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

// Shuffler produces uniformly random permutations of a statement bank.
// It is safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewShuffler creates a shuffler backed by src. A nil src seeds from the clock.
func NewShuffler(src rand.Source) *Shuffler {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Shuffler{rnd: rand.New(src)}
}

// Shuffle returns a shuffled copy of statements using Fisher-Yates.
// The input slice is never modified.
func (s *Shuffler) Shuffle(statements []entities.Statement) []entities.Statement {
	shuffled := make([]entities.Statement, len(statements))
	copy(shuffled, statements)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

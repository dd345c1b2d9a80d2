package quiz

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

type trackedEvent struct {
	name  string
	props map[string]any
}

type recordingTracker struct {
	mu     sync.Mutex
	events []trackedEvent
}

func (r *recordingTracker) Track(name string, props map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, trackedEvent{name: name, props: props})
}

func (r *recordingTracker) named(name string) []trackedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []trackedEvent
	for _, e := range r.events {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

func testBank(n int) []entities.Statement {
	bank := make([]entities.Statement, 0, n)
	for i := 1; i <= n; i++ {
		bank = append(bank, entities.Statement{
			ID:            i,
			Text:          fmt.Sprintf("statement %d", i),
			IsTrue:        i%3 == 0,
			Explanation:   fmt.Sprintf("explanation %d", i),
			ReferenceLink: fmt.Sprintf("https://developer.mozilla.org/%d", i),
		})
	}
	return bank
}

func newTestMachine(tracker Tracker) *Machine {
	return NewMachine(testBank(15), NewShuffler(rand.NewSource(42)), tracker, 0)
}

func idSet(statements []entities.Statement) map[int]int {
	set := make(map[int]int, len(statements))
	for _, s := range statements {
		set[s.ID]++
	}
	return set
}

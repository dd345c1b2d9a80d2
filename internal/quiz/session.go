// Package quiz implements the true/false quiz state machine and its scoring.
package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

// Stage is the coarse progress of a session.
type Stage int

const (
	NotStarted Stage = iota
	InProgress
	Finished
)

func (s Stage) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session is one playthrough's progress. Values returned by Machine are
// copies and can be read freely.
type Session struct {
	ID           uuid.UUID            // zero until the session is started
	Stage        Stage                // current stage
	Order        []entities.Statement // shuffled bank, fixed once started
	CurrentIndex int                  // index into Order of the visible statement
	Answers      []bool               // one entry per answered statement, in order
	Revealed     bool                 // current statement answered, not yet advanced
	StartedAt    time.Time            // zero until the session is started
}

// Total returns the number of statements in the session.
func (s Session) Total() int {
	return len(s.Order)
}

// Score returns the number of correct answers so far.
func (s Session) Score() int {
	return Score(s.Order, s.Answers)
}

// Percentage returns the rounded share of correct answers over the whole session.
func (s Session) Percentage() int {
	return Percentage(s.Score(), s.Total())
}

// Current returns the statement at CurrentIndex.
func (s Session) Current() (entities.Statement, bool) {
	if s.Stage != InProgress || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Order) {
		return entities.Statement{}, false
	}
	return s.Order[s.CurrentIndex], true
}

// Position returns the 1-based number of the current statement.
func (s Session) Position() int {
	return s.CurrentIndex + 1
}

// IsLast reports whether the current statement is the final one.
func (s Session) IsLast() bool {
	return len(s.Order) > 0 && s.CurrentIndex == len(s.Order)-1
}

// CurrentAnswer returns the recorded answer for the current statement and
// whether it was correct. ok is false until the statement is answered.
func (s Session) CurrentAnswer() (answer, correct, ok bool) {
	st, found := s.Current()
	if !found || s.CurrentIndex >= len(s.Answers) {
		return false, false, false
	}
	answer = s.Answers[s.CurrentIndex]
	return answer, answer == st.IsTrue, true
}

func (s Session) clone() Session {
	c := s
	c.Order = append([]entities.Statement(nil), s.Order...)
	c.Answers = append([]bool(nil), s.Answers...)
	return c
}

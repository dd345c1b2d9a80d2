package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

// Tracker receives analytics events. Implementations must not block.
type Tracker interface {
	Track(event string, props map[string]any)
}

// anyPosition disables the current-statement check on transitions.
const anyPosition = 0

type nopTracker struct{}

func (nopTracker) Track(string, map[string]any) {}

// Machine owns a single session and applies transitions to it.
//
// SubmitAnswer and Advance are no-ops outside their valid state; the bool
// they return reports whether the transition was applied. The machine is
// safe for concurrent use because delayed advances fire on timer goroutines.
type Machine struct {
	mu sync.Mutex

	bank     []entities.Statement
	shuffler *Shuffler
	tracker  Tracker
	delay    time.Duration

	session    Session
	busy       bool
	generation uint64
	timer      *time.Timer
}

// NewMachine creates a machine in the NotStarted stage.
// A nil shuffler seeds one from the clock and a nil tracker drops events.
func NewMachine(bank []entities.Statement, shuffler *Shuffler, tracker Tracker, delay time.Duration) *Machine {
	if shuffler == nil {
		shuffler = NewShuffler(nil)
	}
	if tracker == nil {
		tracker = nopTracker{}
	}

	return &Machine{
		bank:     append([]entities.Statement(nil), bank...),
		shuffler: shuffler,
		tracker:  tracker,
		delay:    delay,
	}
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.clone()
}

// Busy reports whether a delayed transition is pending.
func (m *Machine) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// Start discards any current session and begins a new one with a fresh shuffle.
func (m *Machine) Start() Session {
	m.mu.Lock()
	m.reset()
	m.session = Session{
		ID:        uuid.New(),
		Stage:     InProgress,
		Order:     m.shuffler.Shuffle(m.bank),
		Answers:   make([]bool, 0, len(m.bank)),
		StartedAt: time.Now(),
	}
	snapshot := m.session.clone()
	m.mu.Unlock()

	m.tracker.Track(entities.EventQuizStarted, map[string]any{
		"session_id": snapshot.ID.String(),
		"total":      snapshot.Total(),
	})

	return snapshot
}

// SubmitAnswer records the player's answer for the current statement and
// reveals the result.
func (m *Machine) SubmitAnswer(answer bool) (Session, bool) {
	return m.submit(anyPosition, answer)
}

// SubmitAnswerAt is SubmitAnswer for the statement at the given 1-based
// position. It is a no-op when that statement is no longer current.
func (m *Machine) SubmitAnswerAt(position int, answer bool) (Session, bool) {
	if position < 1 {
		return m.Session(), false
	}
	return m.submit(position, answer)
}

func (m *Machine) submit(position int, answer bool) (Session, bool) {
	m.mu.Lock()
	if m.busy || m.session.Stage != InProgress || m.session.Revealed ||
		len(m.session.Order) == 0 || len(m.session.Answers) != m.session.CurrentIndex ||
		!m.atPosition(position) {
		snapshot := m.session.clone()
		m.mu.Unlock()
		return snapshot, false
	}

	st := m.session.Order[m.session.CurrentIndex]
	m.session.Answers = append(m.session.Answers, answer)
	m.session.Revealed = true
	snapshot := m.session.clone()
	m.mu.Unlock()

	m.tracker.Track(entities.EventAnswerSubmitted, map[string]any{
		"session_id":  snapshot.ID.String(),
		"question_id": st.ID,
		"user_answer": answer,
		"correct":     answer == st.IsTrue,
		"position":    snapshot.Position(),
	})

	return snapshot, true
}

// Advance moves to the next statement, or finishes the session after the last one.
func (m *Machine) Advance() (Session, bool) {
	return m.advanceNow(anyPosition)
}

func (m *Machine) advanceNow(position int) (Session, bool) {
	m.mu.Lock()
	if m.busy || !m.atPosition(position) {
		snapshot := m.session.clone()
		m.mu.Unlock()
		return snapshot, false
	}
	snapshot, finished, ok := m.advance()
	m.mu.Unlock()

	if finished {
		m.trackCompleted(snapshot)
	}
	return snapshot, ok
}

// AdvanceAfter schedules Advance after the transition delay and calls done
// with the resulting session. The machine stays busy until then. It returns
// false without scheduling anything when Advance would be a no-op. With a
// zero delay the advance happens before AdvanceAfter returns.
//
// A pending advance is dropped if the session is started or restarted in
// the meantime; done is not called in that case.
func (m *Machine) AdvanceAfter(done func(Session)) bool {
	return m.scheduleAdvance(anyPosition, done)
}

// AdvanceAfterAt is AdvanceAfter for the statement at the given 1-based
// position. It is a no-op when that statement is no longer current.
func (m *Machine) AdvanceAfterAt(position int, done func(Session)) bool {
	if position < 1 {
		return false
	}
	return m.scheduleAdvance(position, done)
}

func (m *Machine) scheduleAdvance(position int, done func(Session)) bool {
	if m.delay <= 0 {
		snapshot, ok := m.advanceNow(position)
		if ok && done != nil {
			done(snapshot)
		}
		return ok
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy || !m.canAdvance() || !m.atPosition(position) {
		return false
	}

	m.busy = true
	gen := m.generation
	m.timer = time.AfterFunc(m.delay, func() {
		m.mu.Lock()
		if gen != m.generation {
			m.mu.Unlock()
			return
		}
		m.busy = false
		m.timer = nil
		snapshot, finished, ok := m.advance()
		m.mu.Unlock()

		if !ok {
			return
		}
		if finished {
			m.trackCompleted(snapshot)
		}
		if done != nil {
			done(snapshot)
		}
	})

	return true
}

// Restart discards the current session and returns to NotStarted.
func (m *Machine) Restart() Session {
	m.mu.Lock()
	previous := m.session.ID
	m.reset()
	m.session = Session{}
	snapshot := m.session.clone()
	m.mu.Unlock()

	props := map[string]any{}
	if previous != uuid.Nil {
		props["session_id"] = previous.String()
	}
	m.tracker.Track(entities.EventQuizRestarted, props)

	return snapshot
}

// Stop cancels a pending delayed advance, if any.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// atPosition reports whether position is anyPosition or names the current
// statement. Callers hold m.mu.
func (m *Machine) atPosition(position int) bool {
	return position == anyPosition ||
		(m.session.Stage == InProgress && m.session.Position() == position)
}

func (m *Machine) canAdvance() bool {
	return m.session.Stage == InProgress && m.session.Revealed && len(m.session.Order) > 0
}

// advance applies the transition. Callers hold m.mu.
func (m *Machine) advance() (snapshot Session, finished, ok bool) {
	if !m.canAdvance() {
		return m.session.clone(), false, false
	}

	m.session.Revealed = false
	if m.session.CurrentIndex < len(m.session.Order)-1 {
		m.session.CurrentIndex++
	} else {
		m.session.Stage = Finished
		finished = true
	}

	return m.session.clone(), finished, true
}

// reset cancels pending timers and invalidates callbacks already in flight.
// Callers hold m.mu.
func (m *Machine) reset() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.busy = false
	m.generation++
}

func (m *Machine) trackCompleted(s Session) {
	m.tracker.Track(entities.EventQuizCompleted, map[string]any{
		"session_id": s.ID.String(),
		"score":      s.Score(),
		"total":      s.Total(),
		"percentage": s.Percentage(),
	})
}

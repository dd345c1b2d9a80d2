package service

import (
	"fmt"
	"time"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/quiz"
	"github.com/pransh15/html-myths-quiz/internal/storage"
)

// TrackerFactory returns the analytics tracker for a user.
type TrackerFactory func(userID int64) quiz.Tracker

// QuizService keeps one quiz machine per user. Sessions live in memory and
// are lost on restart.
type QuizService struct {
	statements StatementRepository
	shuffler   *quiz.Shuffler
	trackers   TrackerFactory
	delay      time.Duration
	machines   *storage.MachineStorage
}

// NewQuizService creates a new quiz service.
func NewQuizService(
	statements StatementRepository,
	shuffler *quiz.Shuffler,
	trackers TrackerFactory,
	delay time.Duration,
) *QuizService {
	if shuffler == nil {
		shuffler = quiz.NewShuffler(nil)
	}

	return &QuizService{
		statements: statements,
		shuffler:   shuffler,
		trackers:   trackers,
		delay:      delay,
		machines:   storage.NewMachineStorage(),
	}
}

// Statements returns the question bank in its stored order.
func (s *QuizService) Statements() []entities.Statement {
	return s.statements.GetAll()
}

// StatementByID returns a single statement from the bank.
func (s *QuizService) StatementByID(id int) (entities.Statement, error) {
	st, err := s.statements.GetByID(id)
	if err != nil {
		return entities.Statement{}, fmt.Errorf("get statement %d: %w", id, err)
	}
	return st, nil
}

// StatementCount returns the size of the bank.
func (s *QuizService) StatementCount() int {
	return s.statements.Count()
}

// ActiveSessions returns the number of users with a quiz machine in memory.
func (s *QuizService) ActiveSessions() int {
	return s.machines.Len()
}

// Start begins a new session for the user, discarding any current one.
func (s *QuizService) Start(userID int64) quiz.Session {
	return s.machine(userID).Start()
}

// SubmitAnswerAt records the user's answer for the statement at position,
// provided it is still the current one.
func (s *QuizService) SubmitAnswerAt(userID int64, position int, answer bool) (quiz.Session, bool) {
	return s.machine(userID).SubmitAnswerAt(position, answer)
}

// AdvanceAfterAt moves the user past the statement at position after the
// transition delay and calls done with the result.
func (s *QuizService) AdvanceAfterAt(userID int64, position int, done func(quiz.Session)) bool {
	return s.machine(userID).AdvanceAfterAt(position, done)
}

// Restart discards the user's session and returns to the intro.
func (s *QuizService) Restart(userID int64) quiz.Session {
	return s.machine(userID).Restart()
}

// Session returns the user's current session.
func (s *QuizService) Session(userID int64) quiz.Session {
	m, ok := s.machines.Get(userID)
	if !ok {
		return quiz.Session{}
	}
	return m.Session()
}

// Close cancels every pending transition.
func (s *QuizService) Close() {
	s.machines.StopAll()
}

func (s *QuizService) machine(userID int64) *quiz.Machine {
	return s.machines.GetOrCreate(userID, func() *quiz.Machine {
		var tracker quiz.Tracker
		if s.trackers != nil {
			tracker = s.trackers(userID)
		}
		return quiz.NewMachine(s.statements.GetAll(), s.shuffler, tracker, s.delay)
	})
}

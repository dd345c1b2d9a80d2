package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres"
	"github.com/pransh15/html-myths-quiz/internal/infra/postgres/repository"
)

type fakeEventRepo struct {
	mu       sync.Mutex
	batches  [][]entities.Event
	inserted chan int
	err      error
	cutoff   time.Time
	deleted  int64
	counts   map[string]int64
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{inserted: make(chan int, 64)}
}

func (r *fakeEventRepo) InsertBatch(_ context.Context, events []entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.batches = append(r.batches, append([]entities.Event(nil), events...))
	r.inserted <- len(events)
	return nil
}

func (r *fakeEventRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return 0, r.err
	}
	r.cutoff = cutoff
	return r.deleted, nil
}

func (r *fakeEventRepo) CountByName(context.Context, time.Time) (map[string]int64, error) {
	return r.counts, r.err
}

func (r *fakeEventRepo) all() []entities.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entities.Event
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[int64]*entities.UserSettings
	locked   int
	err      error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[int64]*entities.UserSettings)}
}

func (r *fakeSettingsRepo) Create(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	if _, ok := r.settings[userID]; !ok {
		r.settings[userID] = entities.NewUserSettings(userID)
	}
	return nil
}

func (r *fakeSettingsRepo) GetByUserID(_ context.Context, userID int64) (*entities.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[userID]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	c := *s
	return &c, nil
}

func (r *fakeSettingsRepo) GetByUserIDForUpdate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	r.mu.Lock()
	r.locked++
	r.mu.Unlock()
	return r.GetByUserID(ctx, userID)
}

func (r *fakeSettingsRepo) UpdateDarkMode(_ context.Context, userID int64, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[userID]
	if !ok {
		return repository.ErrSettingsNotFound
	}
	s.DarkMode = enabled
	return nil
}

var (
	errTxFailed         = errors.New("tx failed")
	errStatementMissing = errors.New("statement missing")
)

type fakeTransactor struct {
	calls int
	err   error
}

func (t *fakeTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, tx postgres.DBTX) error) error {
	t.calls++
	if t.err != nil {
		return t.err
	}
	return fn(ctx, nil)
}

type fakeStatementRepo struct {
	statements []entities.Statement
}

func (r fakeStatementRepo) GetAll() []entities.Statement {
	return append([]entities.Statement(nil), r.statements...)
}

func (r fakeStatementRepo) GetByID(id int) (entities.Statement, error) {
	for _, st := range r.statements {
		if st.ID == id {
			return st, nil
		}
	}
	return entities.Statement{}, errStatementMissing
}

func (r fakeStatementRepo) Count() int {
	return len(r.statements)
}

func testStatements(n int) []entities.Statement {
	out := make([]entities.Statement, n)
	for i := range out {
		out[i] = entities.Statement{
			ID:     i + 1,
			Text:   "statement",
			IsTrue: i%2 == 0,
		}
	}
	return out
}

package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pransh15/html-myths-quiz/internal/domain/entities"
)

var (
	ErrStatementNotFound = errors.New("statement not found")
	ErrInvalidBank       = errors.New("invalid statement bank")
)

//go:embed data/statements.json
var defaultStatements []byte

// StatementRepository provides read-only access to the question bank.
// The bank is loaded once and never changes at runtime.
type StatementRepository struct {
	statements []entities.Statement
}

// NewStatementRepository loads the bank from path, or from the embedded
// default bank when path is empty.
func NewStatementRepository(path string) (*StatementRepository, error) {
	data := defaultStatements
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read statements file: %w", err)
		}
	}

	statements, err := parseStatements(data)
	if err != nil {
		return nil, err
	}

	return &StatementRepository{statements: statements}, nil
}

// GetAll returns the bank in its defined order. The returned slice is a copy.
func (r *StatementRepository) GetAll() []entities.Statement {
	out := make([]entities.Statement, len(r.statements))
	copy(out, r.statements)
	return out
}

// GetByID returns the statement with the given ID.
func (r *StatementRepository) GetByID(id int) (entities.Statement, error) {
	for _, s := range r.statements {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.Statement{}, ErrStatementNotFound
}

// Count returns the number of statements in the bank.
func (r *StatementRepository) Count() int {
	return len(r.statements)
}

func parseStatements(data []byte) ([]entities.Statement, error) {
	var wrapper struct {
		Statements []entities.Statement `json:"statements"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statements JSON: %w", err)
	}

	if len(wrapper.Statements) == 0 {
		return nil, fmt.Errorf("%w: no statements", ErrInvalidBank)
	}

	seen := make(map[int]struct{}, len(wrapper.Statements))
	for _, s := range wrapper.Statements {
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidBank, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Text == "" {
			return nil, fmt.Errorf("%w: statement %d has no text", ErrInvalidBank, s.ID)
		}
	}

	return wrapper.Statements, nil
}

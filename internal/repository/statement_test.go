package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewStatementRepository_Embedded(t *testing.T) {
	repo, err := NewStatementRepository("")
	if err != nil {
		t.Fatal(err)
	}

	if repo.Count() != 15 {
		t.Fatalf("expected 15 statements, got %d", repo.Count())
	}

	var facts int
	for _, s := range repo.GetAll() {
		if !strings.HasPrefix(s.ReferenceLink, "https://developer.mozilla.org/") {
			t.Errorf("statement %d has unexpected link %q", s.ID, s.ReferenceLink)
		}
		if s.Explanation == "" {
			t.Errorf("statement %d has no explanation", s.ID)
		}
		if s.IsTrue {
			facts++
		}
	}
	if facts != 5 {
		t.Errorf("expected 5 true statements, got %d", facts)
	}
}

func TestStatementRepository_GetByID(t *testing.T) {
	repo, err := NewStatementRepository("")
	if err != nil {
		t.Fatal(err)
	}

	s, err := repo.GetByID(7)
	if err != nil {
		t.Fatal(err)
	}
	if s.Text != "<!DOCTYPE html> is required for standards mode." || !s.IsTrue {
		t.Errorf("unexpected statement: %+v", s)
	}

	if _, err := repo.GetByID(999); !errors.Is(err, ErrStatementNotFound) {
		t.Errorf("expected ErrStatementNotFound, got %v", err)
	}
}

func TestStatementRepository_GetAllReturnsCopy(t *testing.T) {
	repo, err := NewStatementRepository("")
	if err != nil {
		t.Fatal(err)
	}

	all := repo.GetAll()
	all[0].Text = "changed"

	if repo.GetAll()[0].Text == "changed" {
		t.Error("GetAll exposed internal storage")
	}
}

func TestNewStatementRepository_File(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "valid",
			content: `{"statements":[{"id":1,"text":"a","is_true":true},{"id":2,"text":"b"}]}`,
		},
		{
			name:    "empty",
			content: `{"statements":[]}`,
			wantErr: ErrInvalidBank,
		},
		{
			name:    "duplicate ids",
			content: `{"statements":[{"id":1,"text":"a"},{"id":1,"text":"b"}]}`,
			wantErr: ErrInvalidBank,
		},
		{
			name:    "missing text",
			content: `{"statements":[{"id":1}]}`,
			wantErr: ErrInvalidBank,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "statements.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			repo, err := NewStatementRepository(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if repo.Count() != 2 {
				t.Errorf("expected 2 statements, got %d", repo.Count())
			}
		})
	}
}

func TestNewStatementRepository_MissingFile(t *testing.T) {
	if _, err := NewStatementRepository(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

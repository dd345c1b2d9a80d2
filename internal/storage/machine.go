package storage

import (
	"sync"

	"github.com/pransh15/html-myths-quiz/internal/quiz"
)

// MachineStorage provides in-memory storage for quiz machines by user ID.
type MachineStorage struct {
	mu       sync.RWMutex
	machines map[int64]*quiz.Machine
}

// NewMachineStorage creates a new MachineStorage.
func NewMachineStorage() *MachineStorage {
	return &MachineStorage{
		machines: make(map[int64]*quiz.Machine),
	}
}

// Get retrieves the machine for a given user ID.
func (s *MachineStorage) Get(userID int64) (*quiz.Machine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.machines[userID]
	return m, ok
}

// GetOrCreate returns the user's machine, storing the result of create if
// there is none yet.
func (s *MachineStorage) GetOrCreate(userID int64, create func() *quiz.Machine) *quiz.Machine {
	if m, ok := s.Get(userID); ok {
		return m
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.machines[userID]; ok {
		return m
	}
	m := create()
	s.machines[userID] = m
	return m
}

// Len returns the number of stored machines.
func (s *MachineStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.machines)
}

// StopAll cancels pending transitions on every stored machine.
func (s *MachineStorage) StopAll() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.machines {
		m.Stop()
	}
}

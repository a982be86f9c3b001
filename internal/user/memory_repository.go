package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps principals in process memory, for tests and
// single-process development.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]Principal
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: map[uuid.UUID]Principal{}}
}

// Add stores a principal, overwriting any existing row with the same id.
func (m *MemoryRepository) Add(p Principal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[p.ID] = p
}

func (m *MemoryRepository) ByID(_ context.Context, id uuid.UUID) (*Principal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

package story

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps stories in process memory. Suitable for tests and
// single-process development, not for production.
type MemoryRepository struct {
	mu      sync.RWMutex
	stories map[uuid.UUID]Story
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{stories: map[uuid.UUID]Story{}}
}

func (m *MemoryRepository) Create(_ context.Context, s *Story) error {
	if !s.Status.Valid() {
		return fmt.Errorf("story: invalid status %q", s.Status)
	}
	if s.OwnerID == uuid.Nil {
		return errors.New("story: missing owner")
	}

	s.ID = uuid.New()
	s.CreatedAt = time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.stories[s.ID] = *s
	return nil
}

func (m *MemoryRepository) ByID(_ context.Context, id uuid.UUID) (*Story, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemoryRepository) Update(_ context.Context, s *Story) error {
	if !s.Status.Valid() {
		return fmt.Errorf("story: invalid status %q", s.Status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.stories[s.ID]
	if !ok || existing.OwnerID != s.OwnerID {
		return ErrNotFound
	}

	existing.Title = s.Title
	existing.Body = s.Body
	existing.Status = s.Status
	m.stories[s.ID] = existing
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.stories[id]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.stories, id)
	return nil
}

func (m *MemoryRepository) ListPublic(_ context.Context) ([]Story, error) {
	return m.list(func(s Story) bool {
		return s.Status == Public
	}), nil
}

func (m *MemoryRepository) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]Story, error) {
	return m.list(func(s Story) bool {
		return s.OwnerID == ownerID
	}), nil
}

func (m *MemoryRepository) ListPublicByOwner(_ context.Context, ownerID uuid.UUID) ([]Story, error) {
	return m.list(func(s Story) bool {
		return s.OwnerID == ownerID && s.Status == Public
	}), nil
}

func (m *MemoryRepository) list(keep func(Story) bool) []Story {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Story
	for _, s := range m.stories {
		if keep(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

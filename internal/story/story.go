package story

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Visibility controls who may read a story besides its owner.
type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// Valid reports whether v is one of the two known values.
func (v Visibility) Valid() bool {
	return v == Public || v == Private
}

// Story is the protected resource. OwnerID is set once at creation from
// the resolved principal and is never written again.
type Story struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Body      string
	Status    Visibility
	CreatedAt time.Time

	// OwnerName is denormalized into listing and detail reads for display.
	OwnerName string
}

// ErrNotFound indicates no story row exists for the given id, or that an
// owner-scoped write matched no row.
var ErrNotFound = errors.New("story: not found")

// Repository is the storage collaborator for stories. List results are
// ordered newest first.
type Repository interface {
	Create(ctx context.Context, s *Story) error
	ByID(ctx context.Context, id uuid.UUID) (*Story, error)

	// Update replaces title, body and status of the story owned by
	// s.OwnerID. The owner column is never part of the update set.
	Update(ctx context.Context, s *Story) error

	// Delete permanently removes the story if ownerID owns it.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	ListPublic(ctx context.Context) ([]Story, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Story, error)
	ListPublicByOwner(ctx context.Context, ownerID uuid.UUID) ([]Story, error)
}

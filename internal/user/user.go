package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Principal is an authenticated human as seen by the rest of the
// application. It is resolved once per request from the session and
// compared by ID only.
type Principal struct {
	ID        uuid.UUID
	Name      string
	AvatarURL string
	Email     string
	CreatedAt time.Time
}

// Repository loads principals by their internal id.
type Repository interface {
	ByID(ctx context.Context, id uuid.UUID) (*Principal, error)
}

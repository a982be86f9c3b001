package resolver

import (
	"context"

	"github.com/subhankar18r/story-books/internal/auth"
)

// Resolver determines which internal user an external identity belongs to.
// It is the ONLY place where identity-to-user mapping logic lives.
type Resolver interface {
	Resolve(
		ctx context.Context,
		identity *auth.Identity,
	) (userID string, err error)
}

package session

import (
	"context"
	"time"
)

// Session binds an opaque client token to a user. The token is the only
// value the client ever sees; everything else stays server-side.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	CreatedAt time.Time // when the session was established
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved. Get returns
// (nil, nil) for an unknown token; absence is not an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

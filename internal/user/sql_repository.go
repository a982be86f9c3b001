package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/subhankar18r/story-books/internal/db"

	"github.com/google/uuid"
)

// ErrNotFound indicates no user row exists for the given id.
var ErrNotFound = errors.New("user: not found")

type SQLRepository struct {
	db *db.DB
}

func NewSQLRepository(db *db.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) ByID(ctx context.Context, id uuid.UUID) (*Principal, error) {
	var p Principal
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, avatar_url, email, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.AvatarURL, &p.Email, &p.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

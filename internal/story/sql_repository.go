package story

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/subhankar18r/story-books/internal/db"

	"github.com/google/uuid"
)

type SQLRepository struct {
	db *db.DB
}

func NewSQLRepository(db *db.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *Story) error {
	if !s.Status.Valid() {
		return fmt.Errorf("story: invalid status %q", s.Status)
	}
	if s.OwnerID == uuid.Nil {
		return errors.New("story: missing owner")
	}

	return r.db.QueryRowContext(ctx, `
		INSERT INTO stories (owner_id, title, body, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`,
		s.OwnerID,
		s.Title,
		s.Body,
		string(s.Status),
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *SQLRepository) ByID(ctx context.Context, id uuid.UUID) (*Story, error) {
	var s Story
	err := r.db.QueryRowContext(ctx, `
		SELECT s.id, s.owner_id, s.title, s.body, s.status, s.created_at, u.name
		FROM stories s
		JOIN users u ON u.id = s.owner_id
		WHERE s.id = $1
	`, id).Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.Body, &s.Status, &s.CreatedAt,
		&s.OwnerName,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *SQLRepository) Update(ctx context.Context, s *Story) error {
	if !s.Status.Valid() {
		return fmt.Errorf("story: invalid status %q", s.Status)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE stories
		SET title = $3, body = $4, status = $5
		WHERE id = $1 AND owner_id = $2
	`,
		s.ID,
		s.OwnerID,
		s.Title,
		s.Body,
		string(s.Status),
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM stories
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLRepository) ListPublic(ctx context.Context) ([]Story, error) {
	return r.list(ctx, `
		SELECT s.id, s.owner_id, s.title, s.body, s.status, s.created_at, u.name
		FROM stories s
		JOIN users u ON u.id = s.owner_id
		WHERE s.status = 'public'
		ORDER BY s.created_at DESC
	`)
}

func (r *SQLRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Story, error) {
	return r.list(ctx, `
		SELECT s.id, s.owner_id, s.title, s.body, s.status, s.created_at, u.name
		FROM stories s
		JOIN users u ON u.id = s.owner_id
		WHERE s.owner_id = $1
		ORDER BY s.created_at DESC
	`, ownerID)
}

func (r *SQLRepository) ListPublicByOwner(ctx context.Context, ownerID uuid.UUID) ([]Story, error) {
	return r.list(ctx, `
		SELECT s.id, s.owner_id, s.title, s.body, s.status, s.created_at, u.name
		FROM stories s
		JOIN users u ON u.id = s.owner_id
		WHERE s.owner_id = $1 AND s.status = 'public'
		ORDER BY s.created_at DESC
	`, ownerID)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...any) ([]Story, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []Story
	for rows.Next() {
		var s Story
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.Title, &s.Body, &s.Status, &s.CreatedAt,
			&s.OwnerName,
		); err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, rows.Err()
}

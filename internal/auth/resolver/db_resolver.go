package resolver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/subhankar18r/story-books/internal/auth"
	"github.com/subhankar18r/story-books/internal/db"

	"github.com/google/uuid"
)

// DBResolver resolves identities using the database. It upserts by
// (provider, provider_user_id): exactly one user row ever exists per
// external identity, and profile attributes are refreshed on each login.
type DBResolver struct {
	db *db.DB
}

func NewDBResolver(db *db.DB) *DBResolver {
	return &DBResolver{db: db}
}

func (r *DBResolver) Resolve(
	ctx context.Context,
	identity *auth.Identity,
) (string, error) {

	if identity == nil {
		return "", errors.New("identity is nil")
	}

	// 1. Identity lookup (provider + provider_user_id)
	var userID uuid.UUID
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id
		FROM identities
		WHERE provider = $1
		  AND provider_user_id = $2
	`,
		identity.Provider,
		identity.ProviderUserID,
	).Scan(&userID)

	if err == nil {
		// Returning user: refresh profile attributes.
		_, err = r.db.ExecContext(ctx, `
			UPDATE users
			SET name = $2, avatar_url = $3, updated_at = NOW()
			WHERE id = $1
		`,
			userID,
			identity.Name,
			identity.AvatarURL,
		)
		if err != nil {
			return "", err
		}
		return userID.String(), nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	// 2. First login: create user
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, avatar_url, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		identity.Name,
		identity.AvatarURL,
		identity.Email,
	).Scan(&userID)

	if err != nil {
		return "", err
	}

	// 3. Create identity mapping
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO identities (user_id, provider, provider_user_id)
		VALUES ($1, $2, $3)
	`,
		userID,
		identity.Provider,
		identity.ProviderUserID,
	)

	if err != nil {
		return "", err
	}

	return userID.String(), nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/moments-broadcast/internal/models"
)

type authorityRepository struct {
	db *sqlx.DB
}

func NewAuthorityRepository(db *sqlx.DB) AuthorityRepository {
	return &authorityRepository{
		db: db,
	}
}

// GetActiveByUser returns the highest-level active, unexpired profile of the
// user, or ErrNotFound.
func (r *authorityRepository) GetActiveByUser(ctx context.Context, userIdentifier string) (*models.AuthorityProfile, error) {
	query := `
		SELECT id, user_identifier, authority_level, role_label, scope, scope_identifier,
		       blast_radius, status, valid_until
		FROM authority_profiles
		WHERE user_identifier = $1
		  AND status = 'active'
		  AND (valid_until IS NULL OR valid_until > $2)
		ORDER BY authority_level DESC, created_at DESC
		LIMIT 1
	`

	var profile models.AuthorityProfile
	if err := r.db.GetContext(ctx, &profile, query, userIdentifier, time.Now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get authority profile: %w", err)
	}

	return &profile, nil
}

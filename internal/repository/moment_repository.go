package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/moments-broadcast/internal/models"
)

const momentsTable = "moments"

const momentColumns = `id, title, content, region, category, content_source, is_sponsored, sponsor_name,
	pwa_link, media_urls, status, scheduled_at, broadcasted_at, created_by, created_at, updated_at`

type momentRepository struct {
	db *sqlx.DB
}

func NewMomentRepository(db *sqlx.DB) MomentRepository {
	return &momentRepository{
		db: db,
	}
}

func (r *momentRepository) GetByID(ctx context.Context, id string) (*models.Moment, error) {
	query := `SELECT ` + momentColumns + ` FROM moments WHERE id = $1`

	var m models.Moment
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get moment: %w", err)
	}

	return &m, nil
}

// ClaimDue locks due moments, flips them to broadcasting and commits, so a
// moment is handed out to exactly one claimer.
func (r *momentRepository) ClaimDue(ctx context.Context, now time.Time, limit int) (moments []*models.Moment, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `SELECT ` + momentColumns + `
		FROM moments
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at ASC
		LIMIT $3
		FOR UPDATE SKIP LOCKED`

	if err = tx.SelectContext(ctx, &moments, query, models.MomentStatusScheduled, now, limit); err != nil {
		return nil, fmt.Errorf("failed to select due moments: %w", err)
	}

	if len(moments) > 0 {
		ids := make([]string, len(moments))
		for i, m := range moments {
			ids[i] = m.ID
			m.Status = models.MomentStatusBroadcasting
		}

		update := `UPDATE moments SET status = $1, updated_at = $2 WHERE id = ANY($3)`
		if _, err = tx.ExecContext(ctx, update, models.MomentStatusBroadcasting, time.Now(), pq.Array(ids)); err != nil {
			return nil, fmt.Errorf("failed to claim due moments: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return moments, nil
}

// MarkBroadcasting claims a moment for a manual broadcast. A moment that is
// already broadcasting cannot be claimed again.
func (r *momentRepository) MarkBroadcasting(ctx context.Context, id string) error {
	query := `UPDATE moments SET status = $2, updated_at = $3 WHERE id = $1 AND status <> $2`

	res, err := r.db.ExecContext(ctx, query, id, models.MomentStatusBroadcasting, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark moment broadcasting: %w", err)
	}

	return checkTransition(ctx, r.db, momentsTable, id, res)
}

func (r *momentRepository) MarkBroadcasted(ctx context.Context, id string) error {
	query := `
		UPDATE moments
		SET status = $2, broadcasted_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, id, models.MomentStatusBroadcasted, time.Now(), models.MomentStatusBroadcasting)
	if err != nil {
		return fmt.Errorf("failed to mark moment broadcasted: %w", err)
	}

	return checkTransition(ctx, r.db, momentsTable, id, res)
}

func (r *momentRepository) MarkFailed(ctx context.Context, id string) error {
	query := `UPDATE moments SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`

	res, err := r.db.ExecContext(ctx, query, id, models.MomentStatusFailed, time.Now(), models.MomentStatusBroadcasting)
	if err != nil {
		return fmt.Errorf("failed to mark moment failed: %w", err)
	}

	return checkTransition(ctx, r.db, momentsTable, id, res)
}

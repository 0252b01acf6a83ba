package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/moments-broadcast/internal/models"
)

const broadcastsTable = "broadcasts"

const broadcastColumns = `id, moment_id, status, recipient_count, success_count, failure_count,
	started_at, completed_at, failure_reason, authority_context, created_at, updated_at`

type broadcastRepository struct {
	db *sqlx.DB
}

func NewBroadcastRepository(db *sqlx.DB) BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// Create inserts a pending broadcast and fills its timestamps.
func (r *broadcastRepository) Create(ctx context.Context, b *models.Broadcast) error {
	query := `
		INSERT INTO broadcasts (id, moment_id, status, recipient_count, authority_context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at
	`

	if b.Status == "" {
		b.Status = models.StatusPending
	}

	err := r.db.QueryRowxContext(ctx, query,
		b.ID, b.MomentID, b.Status, b.RecipientCount, b.AuthorityContext, time.Now(),
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create broadcast: %w", err)
	}

	return nil
}

func (r *broadcastRepository) GetByID(ctx context.Context, id string) (*models.Broadcast, error) {
	query := `SELECT ` + broadcastColumns + ` FROM broadcasts WHERE id = $1`

	var b models.Broadcast
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get broadcast: %w", err)
	}

	return &b, nil
}

func (r *broadcastRepository) MarkProcessing(ctx context.Context, id string) error {
	query := `
		UPDATE broadcasts
		SET status = $2, started_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusProcessing, time.Now(), models.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark broadcast processing: %w", err)
	}

	return checkTransition(ctx, r.db, broadcastsTable, id, res)
}

func (r *broadcastRepository) Complete(ctx context.Context, id string, successCount, failureCount int) error {
	query := `
		UPDATE broadcasts
		SET status = $2, success_count = $3, failure_count = $4, completed_at = $5, updated_at = $5
		WHERE id = $1 AND status = $6
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusCompleted, successCount, failureCount, time.Now(), models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete broadcast: %w", err)
	}

	return checkTransition(ctx, r.db, broadcastsTable, id, res)
}

func (r *broadcastRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := `
		UPDATE broadcasts
		SET status = $2, failure_reason = $3, completed_at = $4, updated_at = $4
		WHERE id = $1 AND status IN ($5, $6)
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusFailed, reason, time.Now(),
		models.StatusPending, models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark broadcast failed: %w", err)
	}

	return checkTransition(ctx, r.db, broadcastsTable, id, res)
}

// List returns a page of broadcasts, newest first, and the total number of
// matching rows.
func (r *broadcastRepository) List(ctx context.Context, filter BroadcastFilter) ([]*models.Broadcast, int64, error) {
	var (
		conditions []string
		args       []interface{}
	)

	addCondition := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.MomentID != "" {
		addCondition("moment_id = $%d", filter.MomentID)
	}
	if filter.Status != "" {
		addCondition("status = $%d", filter.Status)
	}
	if filter.From != nil {
		addCondition("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("created_at <= $%d", *filter.To)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM broadcasts`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count broadcasts: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query := fmt.Sprintf(`SELECT %s FROM broadcasts%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		broadcastColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	var broadcasts []*models.Broadcast
	if err := r.db.SelectContext(ctx, &broadcasts, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list broadcasts: %w", err)
	}

	return broadcasts, total, nil
}

// ListStale returns broadcasts stuck in pending or processing since before olderThan.
func (r *broadcastRepository) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*models.Broadcast, error) {
	query := `SELECT ` + broadcastColumns + `
		FROM broadcasts
		WHERE status IN ($1, $2) AND updated_at < $3
		ORDER BY updated_at ASC
		LIMIT $4`

	var broadcasts []*models.Broadcast
	err := r.db.SelectContext(ctx, &broadcasts, query, models.StatusPending, models.StatusProcessing, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale broadcasts: %w", err)
	}

	return broadcasts, nil
}

func (r *broadcastRepository) Analytics(ctx context.Context, since time.Time) (*models.BroadcastAnalytics, error) {
	query := `
		SELECT COUNT(*) AS total_broadcasts,
		       COALESCE(SUM(recipient_count), 0) AS total_recipients,
		       COALESCE(SUM(success_count), 0) AS total_success,
		       COALESCE(SUM(failure_count), 0) AS total_failures
		FROM broadcasts
		WHERE created_at >= $1
	`

	var analytics models.BroadcastAnalytics
	if err := r.db.GetContext(ctx, &analytics, query, since); err != nil {
		return nil, fmt.Errorf("failed to get broadcast analytics: %w", err)
	}

	return &analytics, nil
}

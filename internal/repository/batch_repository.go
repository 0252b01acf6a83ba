package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/moments-broadcast/internal/models"
)

const batchesTable = "broadcast_batches"

const batchColumns = `id, broadcast_id, batch_number, recipients, status, success_count, failure_count,
	started_at, completed_at, created_at, updated_at`

type batchRepository struct {
	db *sqlx.DB
}

func NewBatchRepository(db *sqlx.DB) BatchRepository {
	return &batchRepository{
		db: db,
	}
}

// CreateBatches inserts all batches of a broadcast atomically: either every
// batch row exists afterwards or none does.
func (r *batchRepository) CreateBatches(ctx context.Context, batches []*models.BroadcastBatch) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO broadcast_batches (id, broadcast_id, batch_number, recipients, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`

	now := time.Now()
	for _, b := range batches {
		if b.Status == "" {
			b.Status = models.StatusPending
		}
		if _, err = tx.ExecContext(ctx, query, b.ID, b.BroadcastID, b.BatchNumber, b.Recipients, b.Status, now); err != nil {
			return fmt.Errorf("failed to create batch %d: %w", b.BatchNumber, err)
		}
		b.CreatedAt = now
		b.UpdatedAt = now
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batches: %w", err)
	}

	return nil
}

func (r *batchRepository) ListByBroadcast(ctx context.Context, broadcastID string) ([]*models.BroadcastBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM broadcast_batches WHERE broadcast_id = $1 ORDER BY batch_number ASC`

	var batches []*models.BroadcastBatch
	if err := r.db.SelectContext(ctx, &batches, query, broadcastID); err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}

	return batches, nil
}

func (r *batchRepository) MarkProcessing(ctx context.Context, id string) error {
	query := `
		UPDATE broadcast_batches
		SET status = $2, started_at = $3, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusProcessing, time.Now(), models.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark batch processing: %w", err)
	}

	return checkTransition(ctx, r.db, batchesTable, id, res)
}

func (r *batchRepository) Complete(ctx context.Context, id string, successCount, failureCount int) error {
	query := `
		UPDATE broadcast_batches
		SET status = $2, success_count = $3, failure_count = $4, completed_at = $5, updated_at = $5
		WHERE id = $1 AND status = $6
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusCompleted, successCount, failureCount, time.Now(), models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to complete batch: %w", err)
	}

	return checkTransition(ctx, r.db, batchesTable, id, res)
}

func (r *batchRepository) MarkFailed(ctx context.Context, id string) error {
	query := `
		UPDATE broadcast_batches
		SET status = $2, completed_at = $3, updated_at = $3
		WHERE id = $1 AND status IN ($4, $5)
	`

	res, err := r.db.ExecContext(ctx, query, id, models.StatusFailed, time.Now(), models.StatusPending, models.StatusProcessing)
	if err != nil {
		return fmt.Errorf("failed to mark batch failed: %w", err)
	}

	return checkTransition(ctx, r.db, batchesTable, id, res)
}

func (r *batchRepository) ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*models.BroadcastBatch, error) {
	query := `SELECT ` + batchColumns + `
		FROM broadcast_batches
		WHERE status IN ($1, $2) AND updated_at < $3
		ORDER BY updated_at ASC
		LIMIT $4`

	var batches []*models.BroadcastBatch
	err := r.db.SelectContext(ctx, &batches, query, models.StatusPending, models.StatusProcessing, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale batches: %w", err)
	}

	return batches, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/moments-broadcast/internal/models"
)

type deliveryRepository struct {
	db *sqlx.DB
}

func NewDeliveryRepository(db *sqlx.DB) DeliveryRepository {
	return &deliveryRepository{
		db: db,
	}
}

func (r *deliveryRepository) Create(ctx context.Context, d *models.Delivery) error {
	query := `
		INSERT INTO broadcast_deliveries
			(id, broadcast_id, batch_id, phone_number, status, provider_message_id, attempts, error, created_at)
		VALUES (:id, :broadcast_id, :batch_id, :phone_number, :status, :provider_message_id, :attempts, :error, :created_at)
	`

	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}

	if _, err := r.db.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("failed to create delivery: %w", err)
	}

	return nil
}

func (r *deliveryRepository) ListByBroadcast(ctx context.Context, broadcastID string) ([]*models.Delivery, error) {
	query := `
		SELECT id, broadcast_id, batch_id, phone_number, status, provider_message_id, attempts, error, created_at
		FROM broadcast_deliveries
		WHERE broadcast_id = $1
		ORDER BY created_at ASC, id
	`

	var deliveries []*models.Delivery
	if err := r.db.SelectContext(ctx, &deliveries, query, broadcastID); err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}

	return deliveries, nil
}

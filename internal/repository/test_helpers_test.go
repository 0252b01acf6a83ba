package repository_test

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/moments-broadcast/internal/models"
)

func insertTestSubscriber(db *sqlx.DB, phoneNumber string, regions, categories []string, optedIn bool, createdAt time.Time) error {
	query := `
		INSERT INTO subscriptions (phone_number, regions, categories, opted_in, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`

	if _, err := db.Exec(query, phoneNumber, pq.Array(regions), pq.Array(categories), optedIn, createdAt); err != nil {
		return fmt.Errorf("failed to insert test subscriber: %w", err)
	}

	return nil
}

func insertTestMoment(db *sqlx.DB, status models.MomentStatus, scheduledAt *time.Time) (string, error) {
	var id string
	query := `
		INSERT INTO moments (title, content, region, category, status, scheduled_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := db.QueryRow(query, "Water outage", "Taps off until 18:00", "KZN", "Infrastructure",
		status, scheduledAt, "admin@example.org").Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to insert test moment: %w", err)
	}

	return id, nil
}

func insertTestAuthority(db *sqlx.DB, userIdentifier string, level, blastRadius int, status string, validUntil *time.Time) (string, error) {
	var id string
	query := `
		INSERT INTO authority_profiles (user_identifier, authority_level, role_label, scope, blast_radius, status, valid_until)
		VALUES ($1, $2, 'ward_councillor', 'ward', $3, $4, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, userIdentifier, level, blastRadius, status, validUntil).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to insert test authority: %w", err)
	}

	return id, nil
}

func newTestBroadcast(recipientCount int) *models.Broadcast {
	return &models.Broadcast{
		ID:             uuid.NewString(),
		Status:         models.StatusPending,
		RecipientCount: recipientCount,
	}
}

func newTestBatches(broadcastID string, recipients ...[]string) []*models.BroadcastBatch {
	batches := make([]*models.BroadcastBatch, len(recipients))
	for i, r := range recipients {
		batches[i] = &models.BroadcastBatch{
			ID:          uuid.NewString(),
			BroadcastID: broadcastID,
			BatchNumber: i + 1,
			Recipients:  r,
		}
	}
	return batches
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

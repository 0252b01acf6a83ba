package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/popeskul/moments-broadcast/internal/models"
)

type subscriberRepository struct {
	db *sqlx.DB
}

func NewSubscriberRepository(db *sqlx.DB) SubscriberRepository {
	return &subscriberRepository{
		db: db,
	}
}

// ListPhoneNumbers returns opted-in subscribers in subscription order. The
// region filter is skipped for empty or national regions.
func (r *subscriberRepository) ListPhoneNumbers(ctx context.Context, filter SubscriberFilter) ([]string, error) {
	conditions := []string{"opted_in = TRUE"}
	var args []interface{}

	if filter.Region != "" && filter.Region != models.RegionNational {
		args = append(args, filter.Region)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(regions)", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(categories)", len(args)))
	}

	query := `SELECT phone_number FROM subscriptions WHERE ` +
		strings.Join(conditions, " AND ") +
		` ORDER BY created_at ASC, id ASC`

	var phones []string
	if err := r.db.SelectContext(ctx, &phones, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return phones, nil
}

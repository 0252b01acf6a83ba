package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/popeskul/moments-broadcast/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Broadcast() BroadcastRepository
	Batch() BatchRepository
	Delivery() DeliveryRepository
	Subscriber() SubscriberRepository
	Authority() AuthorityRepository
	Moment() MomentRepository
}

// BroadcastFilter narrows List results. Zero values are ignored.
type BroadcastFilter struct {
	MomentID string
	Status   models.Status
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

// BroadcastRepository persists broadcast records. Status changes are
// conditional on the current status and return ErrInvalidStatusTransition
// when the record is not in the expected predecessor state.
type BroadcastRepository interface {
	Create(ctx context.Context, broadcast *models.Broadcast) error
	GetByID(ctx context.Context, id string) (*models.Broadcast, error)
	MarkProcessing(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, successCount, failureCount int) error
	MarkFailed(ctx context.Context, id string, reason string) error
	List(ctx context.Context, filter BroadcastFilter) ([]*models.Broadcast, int64, error)
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*models.Broadcast, error)
	Analytics(ctx context.Context, since time.Time) (*models.BroadcastAnalytics, error)
}

// BatchRepository persists the batches of a broadcast.
type BatchRepository interface {
	// CreateBatches inserts all batches in a single transaction.
	CreateBatches(ctx context.Context, batches []*models.BroadcastBatch) error
	ListByBroadcast(ctx context.Context, broadcastID string) ([]*models.BroadcastBatch, error)
	MarkProcessing(ctx context.Context, id string) error
	Complete(ctx context.Context, id string, successCount, failureCount int) error
	MarkFailed(ctx context.Context, id string) error
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*models.BroadcastBatch, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *models.Delivery) error
	ListByBroadcast(ctx context.Context, broadcastID string) ([]*models.Delivery, error)
}

// SubscriberFilter selects opted-in subscribers. Empty fields match everything.
type SubscriberFilter struct {
	Region   string
	Category string
}

type SubscriberRepository interface {
	// ListPhoneNumbers returns phone numbers of opted-in subscribers ordered by
	// subscription time.
	ListPhoneNumbers(ctx context.Context, filter SubscriberFilter) ([]string, error)
}

type AuthorityRepository interface {
	GetActiveByUser(ctx context.Context, userIdentifier string) (*models.AuthorityProfile, error)
}

type MomentRepository interface {
	GetByID(ctx context.Context, id string) (*models.Moment, error)
	// ClaimDue moves up to limit scheduled moments whose time has come into
	// broadcasting and returns them. Rows locked by a concurrent claimer are
	// skipped.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]*models.Moment, error)
	MarkBroadcasting(ctx context.Context, id string) error
	MarkBroadcasted(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
}

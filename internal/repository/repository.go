package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound                = errors.New("record not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db         *sqlx.DB
	broadcast  BroadcastRepository
	batch      BatchRepository
	delivery   DeliveryRepository
	subscriber SubscriberRepository
	authority  AuthorityRepository
	moment     MomentRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:         db,
		broadcast:  NewBroadcastRepository(db),
		batch:      NewBatchRepository(db),
		delivery:   NewDeliveryRepository(db),
		subscriber: NewSubscriberRepository(db),
		authority:  NewAuthorityRepository(db),
		moment:     NewMomentRepository(db),
	}
}

func (r *repositoryImpl) Broadcast() BroadcastRepository {
	return r.broadcast
}

func (r *repositoryImpl) Batch() BatchRepository {
	return r.batch
}

func (r *repositoryImpl) Delivery() DeliveryRepository {
	return r.delivery
}

func (r *repositoryImpl) Subscriber() SubscriberRepository {
	return r.subscriber
}

func (r *repositoryImpl) Authority() AuthorityRepository {
	return r.authority
}

func (r *repositoryImpl) Moment() MomentRepository {
	return r.moment
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}

// checkTransition turns a conditional UPDATE that touched no rows into
// ErrNotFound or ErrInvalidStatusTransition.
func checkTransition(ctx context.Context, db *sqlx.DB, table, id string, res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	// table is always a package constant
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, table)
	if err := db.GetContext(ctx, &exists, query, id); err != nil {
		return fmt.Errorf("failed to check %s existence: %w", table, err)
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidStatusTransition
}

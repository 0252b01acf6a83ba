// Package cache holds the Redis-backed caches used by the broadcast engine.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/popeskul/moments-broadcast/internal/models"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

var ErrCacheMiss = errors.New("cache miss")

// DeliveryEntry maps a provider message id back to the broadcast that produced it.
type DeliveryEntry struct {
	BroadcastID string    `json:"broadcastId"`
	PhoneNumber string    `json:"phoneNumber"`
	SentAt      time.Time `json:"sentAt"`
}

type DeliveryCache interface {
	StoreDelivery(ctx context.Context, providerMessageID string, entry DeliveryEntry) error
	GetDelivery(ctx context.Context, providerMessageID string) (*DeliveryEntry, error)
}

// AuthorityCache caches authority lookups, including the absence of a
// profile. A hit with a nil profile means the user has no active authority.
type AuthorityCache interface {
	GetAuthority(ctx context.Context, userIdentifier string) (profile *models.AuthorityProfile, hit bool, err error)
	StoreAuthority(ctx context.Context, userIdentifier string, profile *models.AuthorityProfile) error
}

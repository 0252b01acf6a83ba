package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/popeskul/moments-broadcast/internal/models"
)

const (
	deliveryKeyPrefix  = "delivery:"
	authorityKeyPrefix = "auth:"
	absentAuthority    = "null"
)

type RedisCache struct {
	rdb          *redis.Client
	deliveryTTL  time.Duration
	authorityTTL time.Duration
}

func NewRedisCache(rdb *redis.Client, deliveryTTL, authorityTTL time.Duration) *RedisCache {
	return &RedisCache{
		rdb:          rdb,
		deliveryTTL:  deliveryTTL,
		authorityTTL: authorityTTL,
	}
}

func (c *RedisCache) StoreDelivery(ctx context.Context, providerMessageID string, entry DeliveryEntry) error {
	entry.SentAt = entry.SentAt.UTC()

	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery entry: %w", err)
	}

	if err := c.rdb.Set(ctx, deliveryKeyPrefix+providerMessageID, b, c.deliveryTTL).Err(); err != nil {
		return fmt.Errorf("failed to store delivery: %w", err)
	}

	return nil
}

func (c *RedisCache) GetDelivery(ctx context.Context, providerMessageID string) (*DeliveryEntry, error) {
	raw, err := c.rdb.Get(ctx, deliveryKeyPrefix+providerMessageID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}

	var entry DeliveryEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal delivery entry: %w", err)
	}

	return &entry, nil
}

func (c *RedisCache) GetAuthority(ctx context.Context, userIdentifier string) (*models.AuthorityProfile, bool, error) {
	raw, err := c.rdb.Get(ctx, authorityKeyPrefix+userIdentifier).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get authority: %w", err)
	}

	if string(raw) == absentAuthority {
		return nil, true, nil
	}

	var profile models.AuthorityProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal authority: %w", err)
	}

	return &profile, true, nil
}

// StoreAuthority caches profile for the authority TTL. A nil profile is
// cached as well so repeated lookups for ordinary users skip the database.
func (c *RedisCache) StoreAuthority(ctx context.Context, userIdentifier string, profile *models.AuthorityProfile) error {
	value := []byte(absentAuthority)
	if profile != nil {
		b, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal authority: %w", err)
		}
		value = b
	}

	if err := c.rdb.Set(ctx, authorityKeyPrefix+userIdentifier, value, c.authorityTTL).Err(); err != nil {
		return fmt.Errorf("failed to store authority: %w", err)
	}

	return nil
}

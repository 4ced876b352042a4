package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisclient "github.com/muhammadheryan/fulfillment/cmd/redis"
	"github.com/muhammadheryan/fulfillment/constant"
	goredis "github.com/redis/go-redis/v9"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	GetTrackingMode(ctx context.Context, productID uint64) (constant.TrackingMode, bool, error)
	SetTrackingMode(ctx context.Context, productID uint64, mode constant.TrackingMode, ttl time.Duration) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetSession resolves a session id (JWT jti) to the user it belongs to.
// Sessions are written by the auth service sharing this Redis.
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, fmt.Errorf("redis client not initialized")
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(val, 10, 64)
}

// GetTrackingMode reads the cached status_batch classification of a product.
// The second return value reports whether the cache held an entry.
func (r *redis) GetTrackingMode(ctx context.Context, productID uint64) (constant.TrackingMode, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, false, nil
	}
	val, err := client.Get(ctx, trackingModeKey(productID)).Result()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	mode, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, err
	}
	return constant.TrackingMode(mode), true, nil
}

// SetTrackingMode caches the status_batch classification of a product
func (r *redis) SetTrackingMode(ctx context.Context, productID uint64, mode constant.TrackingMode, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, trackingModeKey(productID), strconv.Itoa(int(mode)), ttl).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func trackingModeKey(productID uint64) string {
	return fmt.Sprintf("product:tracking_mode:%d", productID)
}

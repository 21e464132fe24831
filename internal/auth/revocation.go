package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "revoked:"

// Denylist records subjects whose outstanding tokens should be rejected
// before they expire naturally. Entries live as long as the access-token
// ttl, after which every token issued before revocation is expired anyway.
type Denylist struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDenylist builds a denylist over the given Redis client. A nil client
// yields a denylist that never reports revocations.
func NewDenylist(client *redis.Client, ttl time.Duration) *Denylist {
	return &Denylist{client: client, ttl: ttl}
}

// Revoke marks every outstanding token for the subject as rejected.
func (d *Denylist) Revoke(ctx context.Context, subject string) error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Set(ctx, denylistKeyPrefix+subject, 1, d.ttl).Err()
}

// IsRevoked reports whether the subject's tokens have been revoked.
func (d *Denylist) IsRevoked(ctx context.Context, subject string) (bool, error) {
	if d == nil || d.client == nil {
		return false, nil
	}
	n, err := d.client.Exists(ctx, denylistKeyPrefix+subject).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

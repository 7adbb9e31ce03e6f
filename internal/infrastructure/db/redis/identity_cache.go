package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eduplatform/education-api/internal/core/domain"
)

const defaultIdentityTTL = time.Minute

// setUnlessFenced writes KEYS[1] only while the fence KEYS[2] is absent.
var setUnlessFenced = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// IdentityCache keeps resolved identities in Redis for a short TTL.
// Key format: identity:<user_id>. Password hashes are never cached.
//
// Invalidate leaves a fence (identity-fence:<user_id>) for one TTL. While it
// exists Set is a no-op, so a lookup that read the record before the change
// cannot put the old identity back.
type IdentityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdentityCache wraps client. A non-positive ttl falls back to one minute.
func NewIdentityCache(client *redis.Client, ttl time.Duration) *IdentityCache {
	if ttl <= 0 {
		ttl = defaultIdentityTTL
	}
	return &IdentityCache{client: client, ttl: ttl}
}

type cachedIdentity struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get returns the cached identity for id. The bool is false on a miss.
func (c *IdentityCache) Get(ctx context.Context, id string) (*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("identity cache get: %w", err)
	}

	var ci cachedIdentity
	if err := json.Unmarshal(raw, &ci); err != nil {
		return nil, false, fmt.Errorf("identity cache decode: %w", err)
	}
	return &domain.User{
		ID:        ci.ID,
		FirstName: ci.FirstName,
		LastName:  ci.LastName,
		Email:     ci.Email,
		Admin:     ci.Admin,
		CreatedAt: ci.CreatedAt,
		UpdatedAt: ci.UpdatedAt,
	}, true, nil
}

func (c *IdentityCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(cachedIdentity{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Admin:     user.Admin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("identity cache encode: %w", err)
	}
	keys := []string{c.key(user.ID), c.fenceKey(user.ID)}
	if err := setUnlessFenced.Run(ctx, c.client, keys, raw, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("identity cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached identity and fences it against stale writes.
func (c *IdentityCache) Invalidate(ctx context.Context, id string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, c.fenceKey(id), "1", c.ttl)
		pipe.Del(ctx, c.key(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("identity cache invalidate: %w", err)
	}
	return nil
}

func (c *IdentityCache) key(id string) string {
	return "identity:" + id
}

func (c *IdentityCache) fenceKey(id string) string {
	return "identity-fence:" + id
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/nebengjek-settlement/internal/pkg/constants"
	"github.com/piresc/nebengjek-settlement/internal/pkg/database"
)

// releaseIfOwner deletes the lease only when it still belongs to the caller
var releaseIfOwner = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LeaseRepo implements settlement.LeaseRepo on Redis
type LeaseRepo struct {
	redis *database.RedisClient
}

func NewLeaseRepository(redisClient *database.RedisClient) *LeaseRepo {
	return &LeaseRepo{redis: redisClient}
}

// AcquireIndexerLease takes the lease for reference if nobody holds it
func (r *LeaseRepo) AcquireIndexerLease(ctx context.Context, reference, owner string, ttl time.Duration) (bool, error) {
	ok, err := r.redis.SetNX(ctx, fmt.Sprintf(constants.KeyIndexerLease, reference), owner, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to acquire indexer lease: %w", err)
	}
	return ok, nil
}

// ReleaseIndexerLease drops the lease if owner still holds it
func (r *LeaseRepo) ReleaseIndexerLease(ctx context.Context, reference, owner string) error {
	key := fmt.Sprintf(constants.KeyIndexerLease, reference)
	if err := releaseIfOwner.Run(ctx, r.redis.GetClient(), []string{key}, owner).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("failed to release indexer lease: %w", err)
	}
	return nil
}

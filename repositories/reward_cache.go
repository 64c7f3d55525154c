package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	rewardCacheKeyPrefix = "rewards:user:"
	minVersionTTL        = 24 * time.Hour
)

// RewardCache stores each user's aggregated reward list in Redis as JSON.
// Lists live under a per-user version; Invalidate bumps the version, so a list
// computed before an invalidation is written under a key nobody reads.
type RewardCache struct {
	client     *redis.Client
	ttl        time.Duration
	versionTTL time.Duration
}

func NewRewardCache(client *redis.Client, ttl time.Duration) *RewardCache {
	versionTTL := minVersionTTL
	if 2*ttl > versionTTL {
		versionTTL = 2 * ttl
	}
	return &RewardCache{client: client, ttl: ttl, versionTTL: versionTTL}
}

func rewardVersionKey(userID primitive.ObjectID) string {
	return rewardCacheKeyPrefix + userID.Hex() + ":version"
}

func rewardCacheKey(userID primitive.ObjectID, version int64) string {
	return rewardCacheKeyPrefix + userID.Hex() + ":" + strconv.FormatInt(version, 10)
}

// Get returns the cached list and the version it belongs to. The version must
// be handed back to Set after a miss.
func (c *RewardCache) Get(ctx context.Context, userID primitive.ObjectID) ([]models.UserRewardShare, int64, bool, error) {
	version, err := c.client.Get(ctx, rewardVersionKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, false, fmt.Errorf("redis get version: %w", err)
	}

	key := rewardCacheKey(userID, version)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, version, false, nil
		}
		return nil, 0, false, fmt.Errorf("redis get: %w", err)
	}

	shares := []models.UserRewardShare{}
	if err := json.Unmarshal(data, &shares); err != nil {
		// Drop entries we can no longer decode
		c.client.Del(ctx, key)
		return nil, version, false, fmt.Errorf("decode cached rewards: %w", err)
	}
	return shares, version, true, nil
}

// Set stores shares under version, as returned by the Get that missed
func (c *RewardCache) Set(ctx context.Context, userID primitive.ObjectID, version int64, shares []models.UserRewardShare) error {
	if shares == nil {
		shares = []models.UserRewardShare{}
	}
	data, err := json.Marshal(shares)
	if err != nil {
		return fmt.Errorf("encode rewards: %w", err)
	}
	if err := c.client.Set(ctx, rewardCacheKey(userID, version), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate moves each user to a new version
func (c *RewardCache) Invalidate(ctx context.Context, userIDs ...primitive.ObjectID) error {
	if len(userIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range userIDs {
			pipe.Incr(ctx, rewardVersionKey(id))
			pipe.Expire(ctx, rewardVersionKey(id), c.versionTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

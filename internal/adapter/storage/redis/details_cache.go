package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DetailsCache implements ports.DetailsCache using Redis. Snapshots are
// stored under versioned keys: Invalidate bumps a per-campaign version
// counter instead of deleting, so a reader that loaded the database before a
// mutation committed writes its snapshot to a key nobody reads anymore.
// Superseded keys simply age out via TTL.
type DetailsCache struct {
	client *goredis.Client
	prefix string
}

// NewDetailsCache creates a new Redis-backed campaign details cache.
func NewDetailsCache(client *goredis.Client) *DetailsCache {
	return &DetailsCache{
		client: client,
		prefix: "campaign_details:",
	}
}

func (c *DetailsCache) dataKey(campaignID uuid.UUID, version uint64) string {
	return fmt.Sprintf("%s%s:v%d", c.prefix, campaignID.String(), version)
}

func (c *DetailsCache) versionKey(campaignID uuid.UUID) string {
	return c.prefix + "ver:" + campaignID.String()
}

// version reads the current snapshot version, zero when never invalidated.
func (c *DetailsCache) version(ctx context.Context, campaignID uuid.UUID) (uint64, error) {
	ver, err := c.client.Get(ctx, c.versionKey(campaignID)).Uint64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis details version: %w", err)
	}
	return ver, nil
}

// Get retrieves the snapshot stored under the current version.
// Returns nil, version, nil on a miss.
func (c *DetailsCache) Get(ctx context.Context, campaignID uuid.UUID) ([]byte, uint64, error) {
	ver, err := c.version(ctx, campaignID)
	if err != nil {
		return nil, 0, err
	}
	val, err := c.client.Get(ctx, c.dataKey(campaignID, ver)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, ver, nil
		}
		return nil, ver, fmt.Errorf("redis details get: %w", err)
	}
	return val, ver, nil
}

// Set stores a snapshot under the version the caller observed at Get time.
func (c *DetailsCache) Set(ctx context.Context, campaignID uuid.UUID, value []byte, version uint64, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.dataKey(campaignID, version), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis details set: %w", err)
	}
	return nil
}

// Invalidate bumps the campaign's snapshot version, orphaning every cached
// copy written under earlier versions.
func (c *DetailsCache) Invalidate(ctx context.Context, campaignID uuid.UUID) error {
	if err := c.client.Incr(ctx, c.versionKey(campaignID)).Err(); err != nil {
		return fmt.Errorf("redis details invalidate: %w", err)
	}
	return nil
}

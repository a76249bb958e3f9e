// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"liveboard_backend/internal/feature/posts/domain/entity"
	"liveboard_backend/internal/feature/posts/search"
	"liveboard_backend/internal/feature/posts/usecase"
)

// CachingPostRepository decorates a PostRepository with Redis caching of
// search results. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository.
// Point lookups and writes pass through; any write invalidates the whole
// search namespace, since a single post can appear in many cached queries.
type CachingPostRepository struct {
	inner     usecase.PostRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingPostRepositoryがPostRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PostRepository = (*CachingPostRepository)(nil)

// NewCachingPostRepository decorates a PostRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "posts".
func NewCachingPostRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PostRepository, namespace string) *CachingPostRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "posts"
	}
	return &CachingPostRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID delegates to the underlying repository without caching.
func (c *CachingPostRepository) FindByID(ctx context.Context, id uint) (*entity.Post, error) {
	return c.inner.FindByID(ctx, id)
}

// Create inserts a post and invalidates cached search results.
func (c *CachingPostRepository) Create(ctx context.Context, p *entity.Post) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update replaces a post's fields and invalidates cached search results.
func (c *CachingPostRepository) Update(ctx context.Context, p *entity.Post) error {
	if err := c.inner.Update(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a post and invalidates cached search results.
func (c *CachingPostRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Search retrieves posts, checking cache first then falling back to the database.
func (c *CachingPostRepository) Search(ctx context.Context, f search.Filter) ([]entity.Post, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Search(ctx, f)
	}

	key := c.cacheKey(f)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Post
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Search(ctx, f)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// DeleteBefore removes past posts and invalidates cached search results.
func (c *CachingPostRepository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	count, err := c.inner.DeleteBefore(ctx, date)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		c.invalidate(ctx)
	}
	return count, nil
}

// cacheKey generates a cache key for a specific search filter. The filter is
// hashed so that distinct filters can never share a key, whatever characters
// the search text contains.
func (c *CachingPostRepository) cacheKey(f search.Filter) string {
	b, _ := json.Marshal(f)
	return fmt.Sprintf("%s:%x", c.namespace, sha256.Sum256(b))
}

// invalidate drops all cached search results in this namespace (best effort).
func (c *CachingPostRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingPostRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

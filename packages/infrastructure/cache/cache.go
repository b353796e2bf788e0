// Read-through cache of search results.
package cache

import (
	"context"
	Error "hobbes/packages/common/errors"
	"hobbes/packages/common/logger"
	"hobbes/packages/common/metrics"
	"hobbes/packages/core/filter"

	jsoniter "github.com/json-iterator/go"
)

var cacheLogger = logger.NewSource("SEARCH CACHE", logger.Default)

const searchKeyPrefix = "search:"

// Key-value storage used by cache, satisfied by *redis.Driver.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value any) *Error.Status
	DeletePattern(ctx context.Context, pattern string) *Error.Status
}

type SearchCache struct {
	storage Storage
}

// If storage is nil, cache is disabled and all calls go straight to the source.
func NewSearchCache(storage Storage) *SearchCache {
	return &SearchCache{storage: storage}
}

func SearchKey(entity string, conjunction filter.Conjunction) string {
	return searchKeyPrefix + entity + ":" + conjunction.String()
}

// Returns cached result of search or calls fetch and caches it's result.
// Cache failures never fail the search.
func Search[T any](
	ctx context.Context,
	c *SearchCache,
	entity string,
	conjunction filter.Conjunction,
	fetch func() ([]T, *Error.Status),
) ([]T, *Error.Status) {
	if c == nil || c.storage == nil {
		return fetch()
	}

	key := SearchKey(entity, conjunction)

	if cached, hit := c.storage.Get(ctx, key); hit {
		var result []T
		err := jsoniter.ConfigFastest.UnmarshalFromString(cached, &result)
		if err == nil {
			metrics.SearchCacheTotal.WithLabelValues(entity, "hit").Inc()
			return result, nil
		}
		cacheLogger.Error("Failed to decode cached search result", err.Error(), nil)
	}

	metrics.SearchCacheTotal.WithLabelValues(entity, "miss").Inc()

	result, err := fetch()
	if err != nil {
		return nil, err
	}

	if result == nil {
		result = []T{}
	}

	encoded, e := jsoniter.ConfigFastest.MarshalToString(result)
	if e != nil {
		cacheLogger.Error("Failed to encode search result", e.Error(), nil)
		return result, nil
	}

	c.storage.Set(ctx, key, encoded)

	return result, nil
}

// Drops all cached searches of entity.
func (c *SearchCache) Invalidate(ctx context.Context, entity string) {
	if c == nil || c.storage == nil {
		return
	}

	if err := c.storage.DeletePattern(ctx, searchKeyPrefix+entity+":*"); err != nil {
		cacheLogger.Error("Failed to invalidate search cache of "+entity, err.Error(), nil)
	}
}

// Drops cached searches of all entities.
func (c *SearchCache) Drop(ctx context.Context) *Error.Status {
	if c == nil || c.storage == nil {
		return nil
	}

	if err := c.storage.DeletePattern(ctx, searchKeyPrefix+"*"); err != nil {
		cacheLogger.Error("Failed to drop search cache", err.Error(), nil)
		return err
	}

	return nil
}

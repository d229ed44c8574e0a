package pexels

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	redisinfra "card-studio-ai-api/internal/infrastructure/persistence/redis"
	"card-studio-ai-api/pkg/logger"
)

// CachedSearcher 在 Redis 中缓存搜索结果，避免对同一查询重复调用 Pexels。
// 缓存层任何故障都退化为直接搜索。
type CachedSearcher struct {
	inner Searcher
	cache *redisinfra.Cache
	ttl   time.Duration
}

// NewCachedSearcher 创建带缓存的搜索器
func NewCachedSearcher(inner Searcher, cache *redisinfra.Cache, ttl time.Duration) *CachedSearcher {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedSearcher{inner: inner, cache: cache, ttl: ttl}
}

func searchCacheKey(query string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "pexels:search:" + hex.EncodeToString(sum[:])
}

// Search 先查缓存，未命中时搜索并写回
func (s *CachedSearcher) Search(ctx context.Context, query string) ([]Photo, error) {
	if s.cache == nil {
		return s.inner.Search(ctx, query)
	}

	data, err := s.cache.GetOrLoadSafe(ctx, searchCacheKey(query), s.ttl, func() (interface{}, error) {
		return s.inner.Search(ctx, query)
	})
	if err != nil {
		logger.Warn(ctx, "pexels cache unavailable, falling back to direct search", "error", err)
		return s.inner.Search(ctx, query)
	}

	var photos []Photo
	if err := json.Unmarshal(data, &photos); err != nil {
		logger.Warn(ctx, "pexels cache payload corrupt, falling back to direct search", "error", err)
		return s.inner.Search(ctx, query)
	}
	if photos == nil {
		photos = []Photo{}
	}
	return photos, nil
}

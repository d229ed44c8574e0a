// Package wire 提供依赖注入配置
package wire

import (
	"context"

	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/domain/repository"
	"card-studio-ai-api/internal/infrastructure/persistence/redis"
	"card-studio-ai-api/internal/infrastructure/pexels"
	"card-studio-ai-api/pkg/logger"
)

// ProvideRedisClient 创建 Redis 客户端并返回清理函数
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn(context.Background(), "failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

// ProvideInterviewSessionRepo 创建带 TTL 的会话存储
func ProvideInterviewSessionRepo(cfg *config.Config, client *redis.Client) repository.InterviewSessionRepository {
	return redis.NewInterviewSessionRepo(client, cfg.Interview.SessionTTL)
}

// ProvidePexelsSearcher 创建带缓存的图片搜索器
func ProvidePexelsSearcher(cfg *config.Config, cache *redis.Cache) pexels.Searcher {
	client := pexels.NewClient(&cfg.Pexels)
	return pexels.NewCachedSearcher(client, cache, cfg.Pexels.CacheTTL)
}

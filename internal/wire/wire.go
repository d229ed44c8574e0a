//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

	"card-studio-ai-api/internal/application/card"
	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/infrastructure/llm"
	"card-studio-ai-api/internal/infrastructure/persistence/redis"
	wfchain "card-studio-ai-api/internal/workflow/chain"
	workflowport "card-studio-ai-api/internal/workflow/port"
	"card-studio-ai-api/internal/interfaces/http/handler"
	"card-studio-ai-api/internal/interfaces/http/middleware"
	"card-studio-ai-api/internal/interfaces/http/router"
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis.RateLimiter)),
)

// InterviewSet 访谈提供者集合
var InterviewSet = wire.NewSet(
	ProvideInterviewSessionRepo,
	interview.NewEngine,
	interview.NewService,
)

// GenerationSet 生成链路提供者集合
var GenerationSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
	wfchain.NewBlueprintChain,
	wfchain.NewCardHTMLChain,
	ProvidePexelsSearcher,
	card.NewBlueprintGenerator,
	card.NewHTMLGenerator,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	handler.NewInterviewHandler,
	handler.NewCardHandler,
	router.New,
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		RedisSet,
		InterviewSet,
		GenerationSet,
		RouterSet,
	)
	return nil, nil, nil
}

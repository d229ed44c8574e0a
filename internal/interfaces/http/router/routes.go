package router

import (
	"card-studio-ai-api/internal/interfaces/http/handler"

	"github.com/gin-gonic/gin"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	interviewHandler *handler.InterviewHandler,
	cardHandler *handler.CardHandler,
) {
	// 需求访谈
	interviews := v1.Group("/interviews")
	{
		interviews.POST("", interviewHandler.Start)
		interviews.GET("/:sid", interviewHandler.Get)
		interviews.DELETE("/:sid", interviewHandler.Delete)
		interviews.GET("/:sid/next-question", interviewHandler.NextQuestion)
		interviews.POST("/:sid/answers", interviewHandler.SubmitAnswer)
		interviews.GET("/:sid/summary", interviewHandler.Summary)
		interviews.POST("/:sid/cancel", interviewHandler.Cancel)

		// 会话驱动的生成
		interviews.POST("/:sid/blueprint", cardHandler.GenerateBlueprint)
		interviews.POST("/:sid/html", cardHandler.GenerateHTML)
	}

	// 无会话的蓝图预览
	cards := v1.Group("/cards")
	{
		cards.POST("/preview", cardHandler.Preview)
	}
}

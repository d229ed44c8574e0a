// Package handler 提供 HTTP 请求处理器
package handler

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/interfaces/http/dto"
	apperrors "card-studio-ai-api/pkg/errors"
)

// resolveProviderModel 解析 LLM Provider 和 Model
func resolveProviderModel(cfg *config.Config, provider, model string) (string, string, error) {
	if cfg == nil {
		return "", "", fmt.Errorf("server config not configured")
	}

	p := strings.TrimSpace(provider)
	if p == "" {
		p = strings.TrimSpace(cfg.LLM.DefaultProvider)
	}
	if p == "" {
		return "", "", fmt.Errorf("llm provider not specified")
	}
	if len(p) > 32 {
		return "", "", fmt.Errorf("llm provider too long")
	}

	providerCfg, ok := cfg.LLM.Providers[p]
	if !ok {
		return "", "", fmt.Errorf("llm provider not found: %s", p)
	}

	m := strings.TrimSpace(model)
	if m == "" {
		m = strings.TrimSpace(providerCfg.Model)
	}
	if len(m) > 64 {
		return "", "", fmt.Errorf("llm model too long")
	}
	return p, m, nil
}

// respondError 按 AppError 映射状态码，未知错误落到 500
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	detail := &dto.ErrorDetail{ErrorCode: string(appErr.Code)}
	if appErr.Detail != "" {
		detail.Details = appErr.Detail
	}
	dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, detail)
}

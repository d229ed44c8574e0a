package dto

import (
	"card-studio-ai-api/internal/application/card"
	"card-studio-ai-api/internal/infrastructure/pexels"
	wfmodel "card-studio-ai-api/internal/workflow/model"
)

// GenerateRequest 生成请求的模型参数，字段均可选
type GenerateRequest struct {
	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// ToOptions 转换为应用层生成选项
func (r *GenerateRequest) ToOptions() card.GenerateOptions {
	if r == nil {
		return card.GenerateOptions{}
	}
	return card.GenerateOptions{
		Provider:    r.Provider,
		Model:       r.Model,
		Temperature: r.Temperature,
		MaxTokens:   r.MaxTokens,
	}
}

// BlueprintResponse 蓝图生成响应
type BlueprintResponse struct {
	SessionID  string               `json:"session_id"`
	RawOutput  string               `json:"raw_output"`
	Blueprint  map[string]any       `json:"blueprint,omitempty"`
	Pexels     []pexels.Photo       `json:"pexels_images"`
	Preview    string               `json:"html_preview,omitempty"`
	HTMLPrompt string               `json:"html_generation_prompt,omitempty"`
	Meta       wfmodel.LLMUsageMeta `json:"meta"`
}

// CardHTMLRequest HTML 生成请求，调用方回传蓝图生成接口返回的 blueprint
type CardHTMLRequest struct {
	GenerateRequest
	Blueprint map[string]any `json:"blueprint" binding:"required"`
}

// CardHTMLResponse HTML 生成响应
type CardHTMLResponse struct {
	SessionID string               `json:"session_id,omitempty"`
	RawOutput string               `json:"raw_output"`
	HTML      string               `json:"html,omitempty"`
	Meta      wfmodel.LLMUsageMeta `json:"meta"`
}

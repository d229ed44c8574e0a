package handler

import (
	"github.com/gin-gonic/gin"

	"card-studio-ai-api/internal/application/card"
	"card-studio-ai-api/internal/application/interview"
	"card-studio-ai-api/internal/config"
	"card-studio-ai-api/internal/interfaces/http/dto"
)

// CardHandler 卡片生成处理器
type CardHandler struct {
	cfg           *config.Config
	interviews    *interview.Service
	blueprints    *card.BlueprintGenerator
	htmlGenerator *card.HTMLGenerator
}

// NewCardHandler 创建卡片生成处理器
func NewCardHandler(cfg *config.Config, interviews *interview.Service, blueprints *card.BlueprintGenerator, htmlGenerator *card.HTMLGenerator) *CardHandler {
	return &CardHandler{
		cfg:           cfg,
		interviews:    interviews,
		blueprints:    blueprints,
		htmlGenerator: htmlGenerator,
	}
}

// GenerateBlueprint 根据会话需求生成卡片蓝图
// POST /v1/interviews/:sid/blueprint
func (h *CardHandler) GenerateBlueprint(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		dto.BadRequest(c, "invalid request body")
		return
	}

	sess, err := h.interviews.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	opts := req.ToOptions()
	provider, model, err := resolveProviderModel(h.cfg, opts.Provider, opts.Model)
	if err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	opts.Provider = provider
	opts.Model = model

	result, err := h.blueprints.Generate(c.Request.Context(), &sess.Requirements, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, &dto.BlueprintResponse{
		SessionID:  sess.ID,
		RawOutput:  result.Raw,
		Blueprint:  result.Blueprint,
		Pexels:     result.Pexels,
		Preview:    result.Preview,
		HTMLPrompt: result.Prompt,
		Meta:       result.Meta,
	})
}

// GenerateHTML 根据蓝图生成成品卡片 HTML
// POST /v1/interviews/:sid/html
func (h *CardHandler) GenerateHTML(c *gin.Context) {
	var req dto.CardHTMLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "blueprint is required")
		return
	}

	sess, err := h.interviews.GetSession(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondError(c, err)
		return
	}

	opts := req.ToOptions()
	provider, model, err := resolveProviderModel(h.cfg, opts.Provider, opts.Model)
	if err != nil {
		dto.BadRequest(c, err.Error())
		return
	}
	opts.Provider = provider
	opts.Model = model

	result, err := h.htmlGenerator.Generate(c.Request.Context(), req.Blueprint, opts)
	if err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, &dto.CardHTMLResponse{
		SessionID: sess.ID,
		RawOutput: result.Raw,
		HTML:      result.HTML,
		Meta:      result.Meta,
	})
}

// Preview 由蓝图直接渲染静态 HTML 预览，不调用 LLM
// POST /v1/cards/preview
func (h *CardHandler) Preview(c *gin.Context) {
	var req struct {
		Blueprint map[string]any `json:"blueprint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "blueprint is required")
		return
	}

	dto.Success(c, gin.H{
		"html_preview": card.BlueprintToHTML(req.Blueprint),
		"html_prompt":  card.BuildCardHTMLPrompt(req.Blueprint),
	})
}

package card

import (
	"context"
	"strings"
	"time"

	wfchain "card-studio-ai-api/internal/workflow/chain"
	wfmodel "card-studio-ai-api/internal/workflow/model"
	wfnode "card-studio-ai-api/internal/workflow/node"
	apperrors "card-studio-ai-api/pkg/errors"
	"card-studio-ai-api/pkg/logger"
	"card-studio-ai-api/pkg/metrics"
)

// HTMLResult 卡片 HTML 生成产物
type HTMLResult struct {
	// Raw 为模型原始输出；HTML 为抽取出的完整文档，抽取失败时为空
	Raw  string               `json:"raw_output"`
	HTML string               `json:"html,omitempty"`
	Meta wfmodel.LLMUsageMeta `json:"meta"`
}

// HTMLGenerator 编排蓝图到成品卡片 HTML 的生成流程
type HTMLGenerator struct {
	chain *wfchain.CardHTMLChain
}

// NewHTMLGenerator 创建 HTML 生成器
func NewHTMLGenerator(chain *wfchain.CardHTMLChain) *HTMLGenerator {
	return &HTMLGenerator{chain: chain}
}

// Generate 根据蓝图生成卡片 HTML：拼装提示词 -> LLM 调用 -> 文档抽取
func (g *HTMLGenerator) Generate(ctx context.Context, blueprint map[string]any, opts GenerateOptions) (*HTMLResult, error) {
	if len(blueprint) == 0 {
		return nil, apperrors.ErrBlueprintNotParsed
	}

	start := time.Now()
	prompt := BuildCardHTMLPrompt(blueprint)

	msg, err := g.chain.Invoke(ctx, &wfmodel.CardHTMLGenerateInput{
		Prompt:      prompt,
		Provider:    opts.Provider,
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		metrics.CardGenerationTotal.WithLabelValues("html", "error").Inc()
		metrics.LLMCallsTotal.WithLabelValues(opts.Provider, opts.Model, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "card html generation failed")
	}

	meta := wfmodel.LLMUsageMeta{
		Provider:  opts.Provider,
		Model:     strings.TrimSpace(opts.Model),
		LatencyMS: time.Since(start).Milliseconds(),
	}
	if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
		meta.PromptTokens = msg.ResponseMeta.Usage.PromptTokens
		meta.CompletionTokens = msg.ResponseMeta.Usage.CompletionTokens
		meta.TotalTokens = msg.ResponseMeta.Usage.TotalTokens
	}
	recordLLMUsage(opts, meta)

	result := &HTMLResult{
		Raw:  msg.Content,
		Meta: meta,
	}

	html := wfnode.ExtractHTMLDocument(msg.Content)
	if html == "" {
		logger.Warn(ctx, "card html output missing a recognisable document",
			"raw_preview", wfnode.TruncateByRunes(msg.Content, 200))
		metrics.CardGenerationTotal.WithLabelValues("html", "unparsed").Inc()
		metrics.CardGenerationDuration.WithLabelValues("html").Observe(time.Since(start).Seconds())
		return result, nil
	}

	result.HTML = html
	metrics.CardGenerationTotal.WithLabelValues("html", "success").Inc()
	metrics.CardGenerationDuration.WithLabelValues("html").Observe(time.Since(start).Seconds())
	return result, nil
}

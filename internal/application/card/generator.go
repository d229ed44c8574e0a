package card

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"card-studio-ai-api/internal/domain/entity"
	"card-studio-ai-api/internal/infrastructure/pexels"
	wfchain "card-studio-ai-api/internal/workflow/chain"
	wfmodel "card-studio-ai-api/internal/workflow/model"
	wfnode "card-studio-ai-api/internal/workflow/node"
	apperrors "card-studio-ai-api/pkg/errors"
	"card-studio-ai-api/pkg/logger"
	"card-studio-ai-api/pkg/metrics"
)

// GenerateOptions 控制单次生成使用的模型参数
type GenerateOptions struct {
	Provider    string
	Model       string
	Temperature *float32
	MaxTokens   *int
}

// BlueprintResult 蓝图生成的完整产物
type BlueprintResult struct {
	// Raw 为模型原始输出，Blueprint 解析失败时调用方仍可拿到原文排查
	Raw       string               `json:"raw_output"`
	Blueprint map[string]any       `json:"blueprint,omitempty"`
	Pexels    []pexels.Photo       `json:"pexels_images"`
	Preview   string               `json:"html_preview,omitempty"`
	Prompt    string               `json:"html_generation_prompt,omitempty"`
	Meta      wfmodel.LLMUsageMeta `json:"meta"`
}

// BlueprintGenerator 编排需求摘要到卡片蓝图的生成流程
type BlueprintGenerator struct {
	chain    *wfchain.BlueprintChain
	searcher pexels.Searcher
}

// NewBlueprintGenerator 创建蓝图生成器
func NewBlueprintGenerator(chain *wfchain.BlueprintChain, searcher pexels.Searcher) *BlueprintGenerator {
	return &BlueprintGenerator{chain: chain, searcher: searcher}
}

// GatherInspirations 按需求组装查询词并搜索背景灵感。
// 搜索不可用时返回空列表，不视为错误。
func (g *BlueprintGenerator) GatherInspirations(ctx context.Context, req *entity.CardRequirements) []pexels.Photo {
	if g.searcher == nil {
		return []pexels.Photo{}
	}
	photos, err := g.searcher.Search(ctx, req.BuildSearchQuery())
	if err != nil || photos == nil {
		if err != nil {
			logger.Warn(ctx, "image inspiration search failed", "error", err.Error())
		}
		return []pexels.Photo{}
	}
	return photos
}

// Generate 执行蓝图生成：搜集灵感 -> 摘要序列化 -> LLM 调用 -> 宽容解析 -> 派生产物
func (g *BlueprintGenerator) Generate(ctx context.Context, req *entity.CardRequirements, opts GenerateOptions) (*BlueprintResult, error) {
	if missing := req.MissingRequiredFields(); len(missing) > 0 {
		return nil, apperrors.ErrInterviewIncomplete.WithDetail(strings.Join(missing, ", "))
	}

	start := time.Now()

	inspirations := g.GatherInspirations(ctx, req)

	summary := req.ToSummaryMap()
	summary["pexels_inspirations"] = inspirations
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeGenerationFailed, "failed to encode requirement summary")
	}

	msg, err := g.chain.Invoke(ctx, &wfmodel.BlueprintGenerateInput{
		SummaryJSON: string(summaryJSON),
		Provider:    opts.Provider,
		Model:       opts.Model,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		metrics.CardGenerationTotal.WithLabelValues("blueprint", "error").Inc()
		metrics.LLMCallsTotal.WithLabelValues(opts.Provider, opts.Model, "error").Inc()
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "blueprint generation failed")
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

	result := &BlueprintResult{
		Raw:    msg.Content,
		Pexels: inspirations,
		Meta:   meta,
	}

	blueprint := wfnode.ParseBestEffortJSON(msg.Content)
	if blueprint == nil {
		logger.Warn(ctx, "blueprint output not parseable as json",
			"raw_preview", wfnode.TruncateByRunes(msg.Content, 200))
		metrics.CardGenerationTotal.WithLabelValues("blueprint", "unparsed").Inc()
		metrics.CardGenerationDuration.WithLabelValues("blueprint").Observe(time.Since(start).Seconds())
		return result, nil
	}

	ensureMustUseImages(blueprint, req.ImageURLs)

	result.Blueprint = blueprint
	result.Preview = BlueprintToHTML(blueprint)
	result.Prompt = BuildCardHTMLPrompt(blueprint)

	metrics.CardGenerationTotal.WithLabelValues("blueprint", "success").Inc()
	metrics.CardGenerationDuration.WithLabelValues("blueprint").Observe(time.Since(start).Seconds())
	return result, nil
}

// ensureMustUseImages 保证用户提供的图片地址出现在 must_use 里，模型偶尔会弄丢它们
func ensureMustUseImages(blueprint map[string]any, userURLs []string) {
	if len(userURLs) == 0 {
		return
	}

	imageAssets, _ := blueprint["image_assets"].(map[string]any)
	if imageAssets == nil {
		imageAssets = make(map[string]any)
		blueprint["image_assets"] = imageAssets
	}

	existing := CollectImageURLs(imageAssets["must_use"])
	seen := make(map[string]struct{}, len(existing))
	merged := make([]any, 0, len(existing)+len(userURLs))
	for _, url := range existing {
		seen[url] = struct{}{}
		merged = append(merged, url)
	}
	for _, url := range userURLs {
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		merged = append(merged, url)
	}
	imageAssets["must_use"] = merged
}

func recordLLMUsage(opts GenerateOptions, meta wfmodel.LLMUsageMeta) {
	provider := opts.Provider
	if provider == "" {
		provider = "default"
	}
	model := meta.Model
	if model == "" {
		model = "default"
	}
	metrics.LLMCallsTotal.WithLabelValues(provider, model, "success").Inc()
	if meta.PromptTokens > 0 {
		metrics.LLMTokensUsed.WithLabelValues(provider, model, "prompt").Add(float64(meta.PromptTokens))
	}
	if meta.CompletionTokens > 0 {
		metrics.LLMTokensUsed.WithLabelValues(provider, model, "completion").Add(float64(meta.CompletionTokens))
	}
}

package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	llmctx "card-studio-ai-api/internal/domain/service"
	wfmodel "card-studio-ai-api/internal/workflow/model"
	wfnode "card-studio-ai-api/internal/workflow/node"
	workflowport "card-studio-ai-api/internal/workflow/port"
	workflowprompt "card-studio-ai-api/internal/workflow/prompt"
	"card-studio-ai-api/pkg/logger"
)

var defaultPromptRegistry = workflowprompt.NewRegistry()

// BlueprintChain 负责把需求摘要交给 LLM 生成卡片蓝图 JSON
type BlueprintChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.BlueprintGenerateInput, *schema.Message]
	chainErr  error
}

func NewBlueprintChain(factory workflowport.ChatModelFactory) *BlueprintChain {
	return &BlueprintChain{factory: factory}
}

func (c *BlueprintChain) Invoke(ctx context.Context, in *wfmodel.BlueprintGenerateInput) (*schema.Message, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

type blueprintChainState struct {
	In       *wfmodel.BlueprintGenerateInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *BlueprintChain) getChain() (compose.Runnable[*wfmodel.BlueprintGenerateInput, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *BlueprintChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.BlueprintGenerateInput, *schema.Message], error) {
	chain := compose.NewChain[*wfmodel.BlueprintGenerateInput, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.BlueprintGenerateInput) (*blueprintChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return &blueprintChainState{In: in}, nil
		}),
		compose.WithNodeName("blueprint.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *blueprintChainState) (*blueprintChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			msgs, err := formatBlueprintMessages(ctx, st.In)
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("blueprint.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *blueprintChainState) (*blueprintChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			if c.factory == nil {
				return nil, fmt.Errorf("llm factory not configured")
			}

			ctx = llmctx.WithWorkflowProvider(ctx, "blueprint_generate", strings.TrimSpace(st.In.Provider))
			chatModel, err := c.factory.Get(ctx, strings.TrimSpace(st.In.Provider))
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildBlueprintModelOptions(st.In, true)...)
			if err != nil && wfnode.IsResponseFormatUnsupportedError(err) {
				logger.Warn(ctx, "llm json_schema not supported, fallback to prompt-only",
					"provider", strings.TrimSpace(st.In.Provider),
					"model", strings.TrimSpace(st.In.Model),
					"error", err.Error(),
				)
				outMsg, err = chatModel.Generate(ctx, st.Messages, buildBlueprintModelOptions(st.In, false)...)
			}
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("blueprint.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *blueprintChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("blueprint.finalize"),
	)

	return chain.Compile(ctx)
}

func formatBlueprintMessages(ctx context.Context, in *wfmodel.BlueprintGenerateInput) ([]*schema.Message, error) {
	tpl, err := defaultPromptRegistry.ChatTemplate(workflowprompt.PromptBlueprintV1)
	if err != nil {
		return nil, err
	}
	summary := strings.TrimSpace(in.SummaryJSON)
	if summary == "" {
		summary = "{}"
	}
	vars := map[string]any{
		"summary_json": summary,
	}
	return tpl.Format(ctx, vars)
}

func buildBlueprintModelOptions(in *wfmodel.BlueprintGenerateInput, enableSchema bool) []model.Option {
	opts := make([]model.Option, 0, 4)
	if in == nil {
		return opts
	}
	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}
	if in.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*in.MaxTokens))
	}
	if strings.TrimSpace(in.Model) != "" {
		opts = append(opts, model.WithModel(strings.TrimSpace(in.Model)))
	}

	if enableSchema {
		opts = append(opts, openaiopts.WithExtraFields(map[string]any{
			"response_format": map[string]any{
				"type": "json_schema",
				"json_schema": map[string]any{
					"name":   "card_blueprint",
					"strict": false,
					"schema": blueprintJSONSchema(),
				},
			},
		}))
	}

	return opts
}

func blueprintJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"card_summary", "messaging", "visual_direction", "image_assets"},
		"properties": map[string]any{
			"card_summary": map[string]any{"type": "string"},
			"messaging": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"headline", "body", "closing"},
				"properties": map[string]any{
					"headline": map[string]any{"type": "string"},
					"body":     map[string]any{"type": "string"},
					"closing":  map[string]any{"type": "string"},
				},
			},
			"visual_direction": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"palette", "typography", "layout", "background_image_plan"},
				"properties": map[string]any{
					"palette": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"typography":            map[string]any{"type": "string"},
					"layout":                map[string]any{"type": "string"},
					"background_image_plan": map[string]any{"type": "string"},
				},
			},
			"image_assets": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"required":             []any{"must_use", "pexels_options"},
				"properties": map[string]any{
					"must_use": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"pexels_options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
			},
			"production_notes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"next_questions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	}
}

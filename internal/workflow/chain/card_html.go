package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	llmctx "card-studio-ai-api/internal/domain/service"
	wfmodel "card-studio-ai-api/internal/workflow/model"
	workflowport "card-studio-ai-api/internal/workflow/port"
	workflowprompt "card-studio-ai-api/internal/workflow/prompt"
)

// CardHTMLChain 负责把完整的设计提示词交给 LLM 渲染卡片 HTML 文档。
// 输出是自由文本，不使用 json_schema 约束，抽取由上层完成。
type CardHTMLChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.CardHTMLGenerateInput, *schema.Message]
	chainErr  error
}

func NewCardHTMLChain(factory workflowport.ChatModelFactory) *CardHTMLChain {
	return &CardHTMLChain{factory: factory}
}

func (c *CardHTMLChain) Invoke(ctx context.Context, in *wfmodel.CardHTMLGenerateInput) (*schema.Message, error) {
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

type cardHTMLChainState struct {
	In       *wfmodel.CardHTMLGenerateInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *CardHTMLChain) getChain() (compose.Runnable[*wfmodel.CardHTMLGenerateInput, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *CardHTMLChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.CardHTMLGenerateInput, *schema.Message], error) {
	chain := compose.NewChain[*wfmodel.CardHTMLGenerateInput, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.CardHTMLGenerateInput) (*cardHTMLChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			if strings.TrimSpace(in.Prompt) == "" {
				return nil, fmt.Errorf("prompt is empty")
			}
			return &cardHTMLChainState{In: in}, nil
		}),
		compose.WithNodeName("card_html.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *cardHTMLChainState) (*cardHTMLChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			tpl, err := defaultPromptRegistry.ChatTemplate(workflowprompt.PromptCardHTMLV1)
			if err != nil {
				return nil, err
			}
			msgs, err := tpl.Format(ctx, map[string]any{
				"prompt": strings.TrimSpace(st.In.Prompt),
			})
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("card_html.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *cardHTMLChainState) (*cardHTMLChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			if c.factory == nil {
				return nil, fmt.Errorf("llm factory not configured")
			}

			ctx = llmctx.WithWorkflowProvider(ctx, "card_html_generate", strings.TrimSpace(st.In.Provider))
			chatModel, err := c.factory.Get(ctx, strings.TrimSpace(st.In.Provider))
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildCardHTMLModelOptions(st.In)...)
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("card_html.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *cardHTMLChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("card_html.finalize"),
	)

	return chain.Compile(ctx)
}

func buildCardHTMLModelOptions(in *wfmodel.CardHTMLGenerateInput) []model.Option {
	opts := make([]model.Option, 0, 3)
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
	return opts
}

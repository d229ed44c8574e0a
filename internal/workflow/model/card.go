package model

// BlueprintGenerateInput 卡片蓝图生成链路的输入
type BlueprintGenerateInput struct {
	// SummaryJSON 为需求摘要的 JSON 文本，由访谈结果序列化而来
	SummaryJSON string `json:"summary_json"`

	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// BlueprintGenerateOutput 卡片蓝图生成链路的输出
type BlueprintGenerateOutput struct {
	// Raw 为模型原始文本，Blueprint 为宽容解析后的结构化结果；
	// 解析失败时 Blueprint 为 nil，Raw 仍然保留
	Raw       string         `json:"raw"`
	Blueprint map[string]any `json:"blueprint,omitempty"`

	Meta LLMUsageMeta `json:"meta"`
}

// CardHTMLGenerateInput 卡片 HTML 生成链路的输入
type CardHTMLGenerateInput struct {
	// Prompt 为已拼装好的用户提示词（蓝图 + 图片素材 + 约束说明）
	Prompt string `json:"prompt"`

	Provider    string   `json:"provider,omitempty"`
	Model       string   `json:"model,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// CardHTMLGenerateOutput 卡片 HTML 生成链路的输出
type CardHTMLGenerateOutput struct {
	// Raw 为模型原始文本，HTML 为抽取出的完整文档；抽取失败时 HTML 为空
	Raw  string `json:"raw"`
	HTML string `json:"html,omitempty"`

	Meta LLMUsageMeta `json:"meta"`
}

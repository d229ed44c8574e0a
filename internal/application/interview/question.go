package interview

import (
	"fmt"
	"strings"

	"card-studio-ai-api/internal/application/textscan"
	"card-studio-ai-api/internal/domain/entity"
)

// Question 访谈题目描述符。
// Field 与 Handler 二选一：Handler 存在时由其完成答案写入（如图片 URL 题），
// 否则把清洗后的答案直接赋给 Field 指定的需求字段。
type Question struct {
	ID       string
	Field    string
	Required bool

	// Prompt 渲染提问文本，可插值已收集的字段
	Prompt func(req *entity.CardRequirements) string

	// Condition 为 nil 时题目始终适用
	Condition func(req *entity.CardRequirements) bool

	// Handler 自定义答案写入逻辑
	Handler func(req *entity.CardRequirements, answer string)
}

// Render 渲染提问文本
func (q *Question) Render(req *entity.CardRequirements) string {
	return q.Prompt(req)
}

// Applicable 题目当前是否适用
func (q *Question) Applicable(req *entity.CardRequirements) bool {
	if q.Condition == nil {
		return true
	}
	return q.Condition(req)
}

// isBusiness 卡片类别是否为商务类
func isBusiness(req *entity.CardRequirements) bool {
	return strings.HasPrefix(strings.ToLower(req.CardType), "business")
}

// handleImageAnswer 图片 URL 题的答案写入：
// URL 进入图片列表，剩余描述文字并入 must_include_elements
func handleImageAnswer(req *entity.CardRequirements, answer string) {
	urls := textscan.ExtractURLs(answer)
	for _, u := range urls {
		req.AddImageURL(u)
	}
	if len(urls) > 0 {
		if remaining := strings.TrimSpace(textscan.StripURLs(answer)); remaining != "" {
			req.MustIncludeElements = MergeText(req.MustIncludeElements, remaining)
		}
		return
	}
	if trimmed := strings.TrimSpace(answer); trimmed != "" {
		req.MustIncludeElements = MergeText(req.MustIncludeElements, trimmed)
	}
}

// QuestionBank 返回固定顺序的题库
func QuestionBank() []Question {
	return []Question{
		{
			ID:       "occasion",
			Field:    entity.FieldOccasion,
			Required: true,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Aap kis occasion ke liye card banana chahte hain?"
			},
		},
		{
			ID:       "card_type",
			Field:    entity.FieldCardType,
			Required: true,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Kya yeh personal card hai ya business card? Agar business hai to brand/company ka naam bhi batayein."
			},
		},
		{
			ID:       "size",
			Field:    entity.FieldSize,
			Required: true,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Card ka size kya rakhen? (jaise 5x7 inch, A5, ya koi digital format)"
			},
		},
		{
			ID:    "recipient",
			Field: entity.FieldRecipient,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Card kis ke liye hai? Agar naam ya relation bata sakein to behatar rahega."
			},
		},
		{
			ID:    "relationship",
			Field: entity.FieldRelationship,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Recipient se aapka relationship kya hai? (jaise friend, client, parents)"
			},
		},
		{
			ID:    "tone",
			Field: entity.FieldTone,
			Prompt: func(req *entity.CardRequirements) string {
				subject := req.Occasion
				if subject == "" {
					subject = "Card"
				}
				return fmt.Sprintf("%s ka tone kaise rakhna hai? (jaise elegant, fun, professional)", subject)
			},
		},
		{
			ID:    "message_focus",
			Field: entity.FieldMessageFocus,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Message ka main focus kya ho? koi keyword ya feeling jo zaroor include ho?"
			},
		},
		{
			ID:    "personalization_details",
			Field: entity.FieldPersonalizationDetails,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Koi personal details ya inside jokes jo add karna chahte ho?"
			},
		},
		{
			ID:    "color_palette",
			Field: entity.FieldColorPalette,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Kis color palette ya combinations ko prefer karenge?"
			},
		},
		{
			ID:    "typography",
			Field: entity.FieldTypography,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Fonts kis type ke pasand karenge? (jaise handwritten, modern sans, serif)"
			},
		},
		{
			ID:    "visual_style",
			Field: entity.FieldVisualStyle,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Background ya illustrations ka style kya ho? (minimal, floral, abstract, etc.)"
			},
		},
		{
			ID:    "must_include_elements",
			Field: entity.FieldMustIncludeElements,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Koi elements ya phrases jo card par zaroor hone chahiye?"
			},
		},
		{
			ID:        "call_to_action",
			Field:     entity.FieldCallToAction,
			Condition: isBusiness,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Agar business card hai to koi call-to-action ya contact info batayein?"
			},
		},
		{
			ID:        "brand_notes",
			Field:     entity.FieldBrandNotes,
			Condition: isBusiness,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Brand guidelines ya logo colors share karna chahenge?"
			},
		},
		{
			ID:    "delivery_format",
			Field: entity.FieldDeliveryFormat,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Card ka final format kya hoga? (print-ready PDF, social media post, etc.)"
			},
		},
		{
			ID:    "deadline",
			Field: entity.FieldDeadline,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Card kab tak ready chahiye? koi deadline ya event date?"
			},
		},
		{
			ID:      "image_urls",
			Handler: handleImageAnswer,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Kya aapke paas koi image ya logo URLs hain jo card mein lazmi hone chahiye?"
			},
		},
		{
			ID:    "additional_notes",
			Field: entity.FieldAdditionalNotes,
			Prompt: func(_ *entity.CardRequirements) string {
				return "Koi aur special instruction ya note jo hume consider karna chahiye?"
			},
		},
	}
}

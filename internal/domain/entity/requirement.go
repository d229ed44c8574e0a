// Package entity 定义领域实体
package entity

import "strings"

// 需求字段名（与序列化键一致）
const (
	FieldOccasion               = "occasion"
	FieldCardType               = "card_type"
	FieldSize                   = "size"
	FieldRecipient              = "recipient"
	FieldRelationship           = "relationship"
	FieldTone                   = "tone"
	FieldMessageFocus           = "message_focus"
	FieldPersonalizationDetails = "personalization_details"
	FieldColorPalette           = "color_palette"
	FieldTypography             = "typography"
	FieldVisualStyle            = "visual_style"
	FieldMustIncludeElements    = "must_include_elements"
	FieldCallToAction           = "call_to_action"
	FieldDeliveryFormat         = "delivery_format"
	FieldDeadline               = "deadline"
	FieldAdditionalNotes        = "additional_notes"
	FieldBrandNotes             = "brand_notes"
)

// requiredFields 必填字段及其固定顺序
var requiredFields = []string{FieldOccasion, FieldCardType, FieldSize}

// fieldOrder 所有文本字段的声明顺序，用于稳定序列化
var fieldOrder = []string{
	FieldOccasion,
	FieldCardType,
	FieldSize,
	FieldRecipient,
	FieldRelationship,
	FieldTone,
	FieldMessageFocus,
	FieldPersonalizationDetails,
	FieldColorPalette,
	FieldTypography,
	FieldVisualStyle,
	FieldMustIncludeElements,
	FieldCallToAction,
	FieldDeliveryFormat,
	FieldDeadline,
	FieldAdditionalNotes,
	FieldBrandNotes,
}

// CardRequirements 一次访谈会话收集到的卡片需求
// 空字符串表示字段尚未收集
type CardRequirements struct {
	Occasion               string `json:"occasion"`
	CardType               string `json:"card_type"`
	Size                   string `json:"size"`
	Recipient              string `json:"recipient"`
	Relationship           string `json:"relationship"`
	Tone                   string `json:"tone"`
	MessageFocus           string `json:"message_focus"`
	PersonalizationDetails string `json:"personalization_details"`
	ColorPalette           string `json:"color_palette"`
	Typography             string `json:"typography"`
	VisualStyle            string `json:"visual_style"`
	MustIncludeElements    string `json:"must_include_elements"`
	CallToAction           string `json:"call_to_action"`
	DeliveryFormat         string `json:"delivery_format"`
	Deadline               string `json:"deadline"`
	AdditionalNotes        string `json:"additional_notes"`
	BrandNotes             string `json:"brand_notes"`

	// ImageURLs 保持插入顺序，去重
	ImageURLs []string `json:"image_urls"`
}

// FieldNames 返回所有文本字段名（声明顺序）
func FieldNames() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// Field 按字段名读取文本字段，未知字段返回空串
func (r *CardRequirements) Field(name string) string {
	switch name {
	case FieldOccasion:
		return r.Occasion
	case FieldCardType:
		return r.CardType
	case FieldSize:
		return r.Size
	case FieldRecipient:
		return r.Recipient
	case FieldRelationship:
		return r.Relationship
	case FieldTone:
		return r.Tone
	case FieldMessageFocus:
		return r.MessageFocus
	case FieldPersonalizationDetails:
		return r.PersonalizationDetails
	case FieldColorPalette:
		return r.ColorPalette
	case FieldTypography:
		return r.Typography
	case FieldVisualStyle:
		return r.VisualStyle
	case FieldMustIncludeElements:
		return r.MustIncludeElements
	case FieldCallToAction:
		return r.CallToAction
	case FieldDeliveryFormat:
		return r.DeliveryFormat
	case FieldDeadline:
		return r.Deadline
	case FieldAdditionalNotes:
		return r.AdditionalNotes
	case FieldBrandNotes:
		return r.BrandNotes
	default:
		return ""
	}
}

// SetField 按字段名写入文本字段，未知字段忽略
func (r *CardRequirements) SetField(name, value string) {
	switch name {
	case FieldOccasion:
		r.Occasion = value
	case FieldCardType:
		r.CardType = value
	case FieldSize:
		r.Size = value
	case FieldRecipient:
		r.Recipient = value
	case FieldRelationship:
		r.Relationship = value
	case FieldTone:
		r.Tone = value
	case FieldMessageFocus:
		r.MessageFocus = value
	case FieldPersonalizationDetails:
		r.PersonalizationDetails = value
	case FieldColorPalette:
		r.ColorPalette = value
	case FieldTypography:
		r.Typography = value
	case FieldVisualStyle:
		r.VisualStyle = value
	case FieldMustIncludeElements:
		r.MustIncludeElements = value
	case FieldCallToAction:
		r.CallToAction = value
	case FieldDeliveryFormat:
		r.DeliveryFormat = value
	case FieldDeadline:
		r.Deadline = value
	case FieldAdditionalNotes:
		r.AdditionalNotes = value
	case FieldBrandNotes:
		r.BrandNotes = value
	}
}

// MissingRequiredFields 返回仍然缺失的必填字段，顺序固定
func (r *CardRequirements) MissingRequiredFields() []string {
	missing := make([]string, 0, len(requiredFields))
	for _, name := range requiredFields {
		if strings.TrimSpace(r.Field(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// IsCoreComplete 三个必填字段是否已全部收集
func (r *CardRequirements) IsCoreComplete() bool {
	return len(r.MissingRequiredFields()) == 0
}

// AddImageURL 追加未见过的图片 URL，返回是否新增
func (r *CardRequirements) AddImageURL(url string) bool {
	for _, existing := range r.ImageURLs {
		if existing == url {
			return false
		}
	}
	r.ImageURLs = append(r.ImageURLs, url)
	return true
}

// ToSummaryMap 转换为稳定键的摘要映射
// 未收集的字段序列化为 null，保证下游生成器总是看到同一套 schema
func (r *CardRequirements) ToSummaryMap() map[string]any {
	m := make(map[string]any, len(fieldOrder)+1)
	for _, name := range fieldOrder {
		if v := r.Field(name); v != "" {
			m[name] = v
		} else {
			m[name] = nil
		}
	}
	urls := make([]string, len(r.ImageURLs))
	copy(urls, r.ImageURLs)
	m["image_urls"] = urls
	return m
}

// BuildSearchQuery 构造图片搜索默认查询词
func (r *CardRequirements) BuildSearchQuery() string {
	keywords := make([]string, 0, 4)
	for _, name := range []string{FieldOccasion, FieldTone, FieldColorPalette, FieldVisualStyle} {
		if v := r.Field(name); v != "" {
			keywords = append(keywords, v)
		}
	}
	if len(keywords) == 0 {
		return "beautiful card background"
	}
	return strings.Join(keywords, " ")
}

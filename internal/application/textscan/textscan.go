// Package textscan 提供从自由文本中识别与清洗 URL 的工具函数。
// 生成模型的输出经常把 URL 混进对话文本，甚至在 URL 中间插入换行。
package textscan

import (
	"regexp"
	"strings"
	"unicode"
)

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// ExtractURLs 按出现顺序提取文本中的所有 URL，不做去重
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// StripURLs 移除文本中的 URL 子串
func StripURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

// NormalizeURL 清洗单个 URL 候选：去掉首尾空白后移除所有内部空白字符。
// 输入为空或清洗后为空时返回空串。
func NormalizeURL(candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

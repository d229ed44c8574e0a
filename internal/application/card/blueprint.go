// Package card 实现卡片蓝图与 HTML 的生成编排
package card

import (
	"strconv"
	"strings"

	"card-studio-ai-api/internal/application/textscan"
)

// Text 把任意蓝图字段转为修剪后的字符串
func Text(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(stringify(value))
}

// stringify 容忍模型输出里偶尔出现的数字或布尔
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// AsList 把蓝图字段规整为字符串列表。
// 接受数组、换行分隔文本或逗号分隔文本，空白项被丢弃。
func AsList(value any) []string {
	if value == nil {
		return nil
	}

	if items, ok := value.([]any); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := Text(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if items, ok := value.([]string); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}

	text := Text(value)
	if text == "" {
		return nil
	}
	if strings.Contains(text, "\n") {
		return splitAndTrim(text, "\n")
	}
	if strings.Contains(text, ",") {
		return splitAndTrim(text, ",")
	}
	return []string{text}
}

func splitAndTrim(text, sep string) []string {
	parts := strings.Split(text, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FirstImageURL 从任意形状的图片条目中取第一个可用地址。
// 支持字符串、{image_url|url|src} 对象和它们的嵌套数组。
func FirstImageURL(candidate any) string {
	switch v := candidate.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range []string{"image_url", "url", "src"} {
			if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
		return ""
	case []any:
		for _, item := range v {
			if url := FirstImageURL(item); url != "" {
				return url
			}
		}
		return ""
	case []string:
		for _, item := range v {
			if s := strings.TrimSpace(item); s != "" {
				return s
			}
		}
		return ""
	}
	return ""
}

// CollectImageURLs 从任意形状的图片条目集合中收集所有地址，保序去重
func CollectImageURLs(candidate any) []string {
	var urls []string
	seen := make(map[string]struct{})

	appendURL := func(raw string) {
		url := textscan.NormalizeURL(raw)
		if url == "" {
			return
		}
		if _, ok := seen[url]; ok {
			return
		}
		seen[url] = struct{}{}
		urls = append(urls, url)
	}

	var walk func(any)
	walk = func(c any) {
		switch v := c.(type) {
		case nil:
		case string:
			appendURL(v)
		case map[string]any:
			for _, key := range []string{"image_url", "url", "src"} {
				if s, ok := v[key].(string); ok {
					appendURL(s)
				}
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		case []string:
			for _, item := range v {
				appendURL(item)
			}
		}
	}
	walk(candidate)

	return urls
}

// SelectBackgroundImage 按 must_use 优先、pexels_options 兜底选出预览背景图
func SelectBackgroundImage(imageAssets map[string]any) string {
	for _, key := range []string{"must_use", "pexels_options"} {
		if url := FirstImageURL(imageAssets[key]); url != "" {
			return url
		}
	}
	return ""
}

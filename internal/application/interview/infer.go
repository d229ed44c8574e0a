// Package interview 实现需求访谈状态机：题库、选题策略与答案摄取。
package interview

import (
	"sort"
	"strings"
)

// cardTypeKeywords 卡片类别到提示关键词的映射
// 新增类别时扩展此表即可
var cardTypeKeywords = map[string][]string{
	"personal":   {"personal"},
	"business":   {"business", "corporate", "company"},
	"invitation": {"invitation", "invite"},
}

// InferCardTypeFromText 根据文本中出现的关键词推断卡片类别。
// 命中单个类别时返回该类别；命中多个类别时按首次出现顺序以空格拼接；
// 无命中返回空串，交由用户补充。
func InferCardTypeFromText(text string) string {
	lowered := strings.ToLower(text)

	type hit struct {
		index    int
		cardType string
	}
	hits := make([]hit, 0, len(cardTypeKeywords))
	for cardType, keywords := range cardTypeKeywords {
		for _, keyword := range keywords {
			if idx := strings.Index(lowered, keyword); idx >= 0 {
				hits = append(hits, hit{index: idx, cardType: cardType})
				break
			}
		}
	}
	if len(hits) == 0 {
		return ""
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].index < hits[j].index })

	ordered := make([]string, 0, len(hits))
	for _, h := range hits {
		seen := false
		for _, t := range ordered {
			if t == h.cardType {
				seen = true
				break
			}
		}
		if !seen {
			ordered = append(ordered, h.cardType)
		}
	}
	return strings.Join(ordered, " ")
}

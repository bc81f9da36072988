package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/yuhao2046/AINewsHub/internal/config"
)

// Classifier 基于词表的相关性筛选：主题命中且不是教程/噪音类内容才保留。
// 这是确定性的词法过滤，不做语义判断，误判在可接受范围内。
type Classifier struct {
	kw config.KeywordSets
}

// 短标题阈值（rune 数）
const (
	shortTitleRunes    = 15
	phraseTitleRunes   = 30
	jargonMatchMinimum = 3
)

func New(kw config.KeywordSets) *Classifier {
	return &Classifier{kw: kw}
}

// IsRelevant 判断文章是否进入输出集合
func (c *Classifier) IsRelevant(title, description string) bool {
	lowerTitle := strings.ToLower(title)
	combined := lowerTitle + " " + strings.ToLower(description)

	return c.isOnTopic(combined) && !c.isLowValue(lowerTitle, combined)
}

// isOnTopic 主题词命中任意一个即相关
func (c *Classifier) isOnTopic(combined string) bool {
	for _, kw := range c.kw.Topic {
		if strings.Contains(combined, kw) {
			return true
		}
	}
	return false
}

// isLowValue 教程/噪音判定，四条规则命中任意一条即过滤：
// 标题含教程词；短标题含教程词；短标题命中教程短语；全文命中多个技术黑话
func (c *Classifier) isLowValue(lowerTitle, combined string) bool {
	titleRunes := utf8.RuneCountInString(lowerTitle)

	for _, kw := range c.kw.Tutorial {
		if strings.Contains(lowerTitle, kw) {
			return true
		}
	}

	if titleRunes < shortTitleRunes {
		for _, kw := range c.kw.Tutorial {
			if strings.Contains(combined, kw) {
				return true
			}
		}
	}

	if titleRunes < phraseTitleRunes {
		for _, p := range c.kw.TutorialPhrases {
			if strings.Contains(lowerTitle, p) {
				return true
			}
		}
	}

	distinct := 0
	for _, j := range c.kw.Jargon {
		if strings.Contains(combined, j) {
			distinct++
			if distinct >= jargonMatchMinimum {
				return true
			}
		}
	}

	return false
}

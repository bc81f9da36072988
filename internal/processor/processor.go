package processor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuhao2046/AINewsHub/internal/collector"
)

// Deduper 基于规整化标题 + 来源做去重，保序、首个出现的胜出
type Deduper struct{}

func NewDeduper() *Deduper {
	return &Deduper{}
}

// 规整化后不足 6 个字符的标题太短，无法可靠比较，不参与去重
const minDedupTitleRunes = 6

// Dedupe 返回去重后的列表。键只由规整化标题和来源构成，与文章 ID 无关。
func (d *Deduper) Dedupe(items []collector.Article) []collector.Article {
	seen := make(map[string]struct{}, len(items))
	out := make([]collector.Article, 0, len(items))

	for _, it := range items {
		norm := normalizeTitle(it.Title)
		if utf8.RuneCountInString(norm) < minDedupTitleRunes {
			out = append(out, it)
			continue
		}

		key := norm + "-" + it.Source
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}

	return out
}

// normalizeTitle 小写、去掉非字母数字且非空白的字符（保留中日韩文字）、合并空白
func normalizeTitle(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

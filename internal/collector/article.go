package collector

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Article 规整后的统一文章结构，后续打分、筛选、排序都基于它
type Article struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Link          string  `json:"link"`
	PubDate       string  `json:"pubDate"`
	Source        string  `json:"source"`
	SourceURL     string  `json:"sourceUrl"`
	Category      string  `json:"category"`
	Timestamp     int64   `json:"timestamp"` // epoch 毫秒，计算用；PubDate 负责展示
	Hotness       float64 `json:"hotness"`
	IsTranslated  bool    `json:"isTranslated,omitempty"`
	OriginalTitle string  `json:"originalTitle,omitempty"`
}

// Fetcher 抽象每一个数据源
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]Article, error)
}

const (
	// 标题缺失时的占位
	placeholderTitle = "无标题"
	// 描述截断长度（rune 数）
	maxDescriptionRunes = 300
)

var stripPolicy = bluemonday.StrictPolicy()

// stripHTML 去掉所有标签并合并空白，得到纯文本描述
func stripHTML(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes 按 rune 数截断，避免把多字节字符截成半个
func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

// randomID 兜底 ID：源里既没有 guid 也没有 link 时使用
func randomID() string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b[:])
}

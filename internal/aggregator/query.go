package aggregator

import (
	"context"
	"strings"
	"time"

	"github.com/yuhao2046/AINewsHub/internal/collector"
	"github.com/yuhao2046/AINewsHub/internal/config"
)

// Options 查询参数。非法值不报错，回落到默认：未知分类按国内，非法条数按 100
type Options struct {
	Category     string
	Search       string
	Limit        int
	ForceRefresh bool
}

// Result 查询结果
type Result struct {
	Items           []collector.Article `json:"items"`
	Total           int                 `json:"total"`
	AsOf            string              `json:"asOf"`
	ServedFromCache bool                `json:"cached"`
}

const (
	defaultLimit = 100
	// 只展示 24 小时内的新闻
	recencyWindow = 24 * time.Hour
)

// GetNews 读缓存（过期则刷新）后执行固定顺序的过滤管线：
// 时效窗口 → 分类 → 搜索 → 去重 → 截断。过滤在缓存之后做，不改动缓存内容。
func (s *Service) GetNews(ctx context.Context, opts Options) (*Result, error) {
	opts = normalizeOptions(opts)

	items, _, fromCache, err := s.cachedItems(ctx, opts.ForceRefresh)
	if err != nil {
		return nil, err
	}

	now := s.now()

	filtered := filterRecent(items, now.UnixMilli())
	filtered = filterByCategory(filtered, opts.Category)
	if opts.Search != "" {
		filtered = searchArticles(filtered, opts.Search)
	}
	filtered = s.dedupe.Dedupe(filtered)
	if len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}

	return &Result{
		Items:           filtered,
		Total:           len(filtered),
		AsOf:            now.Format(time.RFC3339),
		ServedFromCache: fromCache,
	}, nil
}

func normalizeOptions(opts Options) Options {
	if opts.Category != config.CategoryAll && !config.ValidCategory(opts.Category) {
		opts.Category = config.CategoryDomestic
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	opts.Search = strings.TrimSpace(opts.Search)
	return opts
}

// filterRecent 只保留窗口内的文章。边界是严格大于：恰好 24 小时前的被排除。
func filterRecent(items []collector.Article, nowMs int64) []collector.Article {
	cutoff := nowMs - recencyWindow.Milliseconds()
	out := make([]collector.Article, 0, len(items))
	for _, it := range items {
		if it.Timestamp > cutoff {
			out = append(out, it)
		}
	}
	return out
}

func filterByCategory(items []collector.Article, category string) []collector.Article {
	if category == config.CategoryAll {
		return items
	}
	out := make([]collector.Article, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// searchArticles 标题、描述、来源任意一项包含关键词即命中，不区分大小写
func searchArticles(items []collector.Article, query string) []collector.Article {
	q := strings.ToLower(query)
	out := make([]collector.Article, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Source), q) {
			out = append(out, it)
		}
	}
	return out
}

package aggregator

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yuhao2046/AINewsHub/internal/collector"
	"github.com/yuhao2046/AINewsHub/internal/config"
)

// newTestService 返回带可控时钟的 Service 以及底层源的调用计数
func newTestService(items []collector.Article, ttl time.Duration) (*Service, *int64, *time.Time) {
	var calls int64
	now := testNow

	sources := []config.Source{{Name: "a", Category: config.CategoryDomestic}}
	fetchers := map[string]collector.Fetcher{
		"a": &fakeFetcher{name: "a", items: items, calls: &calls},
	}
	agg := newTestAggregator(sources, fetchers)

	s := NewService(agg, ttl)
	clock := func() time.Time { return now }
	s.now = clock
	agg.now = clock

	return s, &calls, &now
}

func TestGetNewsCacheTTL(t *testing.T) {
	items := []collector.Article{article("a1", "缓存测试用的新闻标题", "a", time.Hour)}
	s, calls, now := newTestService(items, 2*time.Hour)
	ctx := context.Background()

	// 首次请求触发聚合
	res, err := s.GetNews(ctx, Options{})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if res.ServedFromCache {
		t.Fatal("first request must not be served from cache")
	}
	if atomic.LoadInt64(calls) != 1 {
		t.Fatalf("fetch calls = %d, want 1", *calls)
	}

	// 1 小时后：缓存仍有效，不重新抓取
	*now = testNow.Add(time.Hour)
	res, err = s.GetNews(ctx, Options{})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if !res.ServedFromCache {
		t.Fatal("request within TTL should be served from cache")
	}
	if atomic.LoadInt64(calls) != 1 {
		t.Fatalf("fetch calls = %d, want 1 (no re-fetch)", *calls)
	}

	// 3 小时后：缓存过期，重新聚合，asOf 更新
	firstAsOf := res.AsOf
	*now = testNow.Add(3 * time.Hour)
	res, err = s.GetNews(ctx, Options{})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if res.ServedFromCache {
		t.Fatal("request after TTL must trigger re-aggregation")
	}
	if atomic.LoadInt64(calls) != 2 {
		t.Fatalf("fetch calls = %d, want 2", *calls)
	}
	if res.AsOf == firstAsOf {
		t.Fatal("asOf should change after re-aggregation")
	}
}

func TestGetNewsForceRefresh(t *testing.T) {
	items := []collector.Article{article("a1", "强制刷新用的新闻标题", "a", time.Hour)}
	s, calls, _ := newTestService(items, 2*time.Hour)
	ctx := context.Background()

	if _, err := s.GetNews(ctx, Options{}); err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if _, err := s.GetNews(ctx, Options{ForceRefresh: true}); err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if atomic.LoadInt64(calls) != 2 {
		t.Fatalf("fetch calls = %d, want 2 (force refresh bypasses TTL)", *calls)
	}
}

func TestGetNewsRecencyBoundary(t *testing.T) {
	// 恰好 24 小时前的被排除，24 小时差 1 毫秒的保留
	atBoundary := article("boundary", "处于边界上的新闻标题", "a", 24*time.Hour)
	inside := article("inside", "边界之内的新闻标题", "a", 24*time.Hour-time.Millisecond)
	s, _, _ := newTestService([]collector.Article{atBoundary, inside}, 2*time.Hour)

	res, err := s.GetNews(context.Background(), Options{})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "inside" {
		t.Fatalf("recency window wrong, got %+v", res.Items)
	}
}

func TestGetNewsCategoryAndLimitPipeline(t *testing.T) {
	mk := func(id, title, cat string, age time.Duration) collector.Article {
		a := article(id, title, "a", age)
		a.Category = cat
		return a
	}
	// 3 条国内 + 2 条国外；国内按新近度排热度：d1 > d2 > d3
	items := []collector.Article{
		mk("d1", "国内最新的一条新闻", config.CategoryDomestic, time.Hour),
		mk("f1", "国外最新的一条新闻", config.CategoryForeign, 30*time.Minute),
		mk("d2", "国内其次的一条新闻", config.CategoryDomestic, 2*time.Hour),
		mk("f2", "国外其次的一条新闻", config.CategoryForeign, time.Hour),
		mk("d3", "国内最旧的一条新闻", config.CategoryDomestic, 3*time.Hour),
	}
	s, _, _ := newTestService(items, 2*time.Hour)

	res, err := s.GetNews(context.Background(), Options{Category: config.CategoryDomestic, Limit: 2})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	if res.Items[0].ID != "d1" || res.Items[1].ID != "d2" {
		t.Fatalf("want top-2 domestic by hotness, got %s,%s", res.Items[0].ID, res.Items[1].ID)
	}
	if res.Total != 2 {
		t.Fatalf("Total = %d, want 2", res.Total)
	}
}

func TestGetNewsCategoryAllPassesThrough(t *testing.T) {
	mk := func(id, cat string) collector.Article {
		a := article(id, "分类测试用的新闻标题"+id, "a", time.Hour)
		a.Category = cat
		return a
	}
	items := []collector.Article{
		mk("d1", config.CategoryDomestic),
		mk("f1", config.CategoryForeign),
	}
	s, _, _ := newTestService(items, 2*time.Hour)

	res, err := s.GetNews(context.Background(), Options{Category: config.CategoryAll})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("category=全部 should pass everything, got %d", len(res.Items))
	}
}

func TestGetNewsSearchFilter(t *testing.T) {
	items := []collector.Article{
		article("1", "OpenAI 新模型相关新闻", "a", time.Hour),
		article("2", "别家公司的普通新闻", "a", time.Hour),
	}
	s, _, _ := newTestService(items, 2*time.Hour)

	res, err := s.GetNews(context.Background(), Options{Search: "openai"})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "1" {
		t.Fatalf("search filter wrong: %+v", res.Items)
	}
}

func TestGetNewsDefensiveDefaults(t *testing.T) {
	mk := func(id, cat string) collector.Article {
		a := article(id, "默认值测试的新闻标题"+id, "a", time.Hour)
		a.Category = cat
		return a
	}
	items := []collector.Article{
		mk("d1", config.CategoryDomestic),
		mk("f1", config.CategoryForeign),
	}
	s, _, _ := newTestService(items, 2*time.Hour)

	// 未知分类回落到国内，非法条数回落到默认
	res, err := s.GetNews(context.Background(), Options{Category: "外太空", Limit: -1})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Category != config.CategoryDomestic {
		t.Fatalf("unknown category should default to domestic: %+v", res.Items)
	}
}

func TestGetNewsDoesNotMutateCache(t *testing.T) {
	items := []collector.Article{
		article("1", "缓存只读校验的新闻标题", "a", time.Hour),
		article("2", "缓存只读校验的新闻标题", "a", time.Hour), // 去重会在查询时丢掉它
	}
	s, _, _ := newTestService(items, 2*time.Hour)
	ctx := context.Background()

	res, err := s.GetNews(ctx, Options{})
	if err != nil {
		t.Fatalf("GetNews error: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("dedupe in query path failed: got %d", len(res.Items))
	}

	// 缓存里仍是未去重的全集
	if len(s.entry.items) != 2 {
		t.Fatalf("cache mutated: %d items, want 2", len(s.entry.items))
	}
}

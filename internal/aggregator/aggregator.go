package aggregator

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/yuhao2046/AINewsHub/internal/classify"
	"github.com/yuhao2046/AINewsHub/internal/collector"
	"github.com/yuhao2046/AINewsHub/internal/config"
	"github.com/yuhao2046/AINewsHub/internal/scorer"
)

// ErrAllSourcesFailed 本轮所有源都抓取失败
var ErrAllSourcesFailed = errors.New("aggregate: all sources failed")

// Aggregator 对启用分类下的所有源做一轮并发聚合：
// 抓取 → 打分 → 相关性筛选 → 排序。单个源失败只记日志，不影响整体。
type Aggregator struct {
	sources    []config.Source
	enabled    map[string]bool
	scorer     *scorer.Scorer
	classifier *classify.Classifier
	translator *collector.Translator // 可为 nil（翻译默认关闭）

	// 按源构造抓取器，测试里替换为假实现
	newFetcher func(config.Source) collector.Fetcher

	now func() time.Time
}

func New(cfg *config.Config, sc *scorer.Scorer, cl *classify.Classifier) *Aggregator {
	enabled := make(map[string]bool, len(cfg.EnabledCategories))
	for _, c := range cfg.EnabledCategories {
		enabled[c] = true
	}

	a := &Aggregator{
		sources:    config.Sources(),
		enabled:    enabled,
		scorer:     sc,
		classifier: cl,
		now:        time.Now,
	}
	a.newFetcher = func(src config.Source) collector.Fetcher {
		if src.Kind == config.SourceKindBoard {
			return collector.NewBoardFetcher(src, cfg.FetchTimeout)
		}
		return collector.NewRSSFetcher(src, cfg.FetchTimeout)
	}

	if cfg.TranslateEnabled {
		a.translator = collector.NewTranslator(cfg.TranslateLimit, cfg.TranslateInterval)
	}
	return a
}

// Aggregate 执行一轮聚合。返回按热度降序排好的文章列表。
func (a *Aggregator) Aggregate(ctx context.Context) ([]collector.Article, error) {
	selected := a.selectSources()
	if len(selected) == 0 {
		return nil, nil
	}

	// 每个源占固定下标，合并顺序始终等于源列表顺序，
	// 输出顺序只由后面的排序决定，与各源完成先后无关
	results := make([][]collector.Article, len(selected))
	var (
		wg      sync.WaitGroup
		okMu    sync.Mutex
		okCount int
	)

	for i, src := range selected {
		wg.Add(1)
		go func(idx int, src config.Source) {
			defer wg.Done()

			f := a.newFetcher(src)
			items, err := f.Fetch(ctx)
			if err != nil {
				log.Printf("fetch %s error: %v", f.Name(), err)
				return
			}

			results[idx] = items
			okMu.Lock()
			okCount++
			okMu.Unlock()
		}(i, src)
	}
	wg.Wait()

	if okCount == 0 {
		return nil, ErrAllSourcesFailed
	}

	nowMs := a.now().UnixMilli()
	merged := make([]collector.Article, 0, 128)
	for _, items := range results {
		for _, it := range items {
			it.Hotness = a.scorer.Score(it, nowMs)
			if !a.classifier.IsRelevant(it.Title, it.Description) {
				continue
			}
			merged = append(merged, it)
		}
	}

	sortByHotness(merged)

	if a.translator != nil {
		merged = a.translator.TranslateTitles(merged)
	}

	return merged, nil
}

func (a *Aggregator) selectSources() []config.Source {
	out := make([]config.Source, 0, len(a.sources))
	for _, s := range a.sources {
		if a.enabled[s.Category] {
			out = append(out, s)
		}
	}
	return out
}

// sortByHotness 热度降序；同分按发布时间降序、再按标题升序，保证相同输入排序结果稳定
func sortByHotness(items []collector.Article) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Hotness != items[j].Hotness {
			return items[i].Hotness > items[j].Hotness
		}
		if items[i].Timestamp != items[j].Timestamp {
			return items[i].Timestamp > items[j].Timestamp
		}
		return items[i].Title < items[j].Title
	})
}

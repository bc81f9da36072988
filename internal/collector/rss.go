package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/yuhao2046/AINewsHub/internal/config"
)

// RSSFetcher 解析一个 RSS/Atom 订阅源并规整为 Article 列表
type RSSFetcher struct {
	source  config.Source
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewRSSFetcher(source config.Source, timeout time.Duration) *RSSFetcher {
	return &RSSFetcher{
		source:  source,
		parser:  gofeed.NewParser(),
		timeout: timeout,
	}
}

func (f *RSSFetcher) Name() string {
	return f.source.Name
}

func (f *RSSFetcher) Fetch(ctx context.Context) ([]Article, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(f.source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss %s: %w", f.source.Name, err)
	}

	now := time.Now()
	out := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		out = append(out, f.normalize(item, now))
	}
	return out, nil
}

// normalize 把 gofeed 的条目映射到 Article，缺失字段按固定规则兜底：
// id 取 guid → link → 随机串；时间取结构化发布时间 → 抓取时刻
func (f *RSSFetcher) normalize(item *gofeed.Item, now time.Time) Article {
	id := item.GUID
	if id == "" {
		id = item.Link
	}
	if id == "" {
		id = randomID()
	}

	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = placeholderTitle
	}

	desc := strings.TrimSpace(stripHTML(item.Description))
	if desc == "" {
		desc = strings.TrimSpace(stripHTML(item.Content))
	}
	desc = truncateRunes(desc, maxDescriptionRunes)

	published := now
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	pubDate := item.Published
	if pubDate == "" {
		pubDate = published.Format(time.RFC3339)
	}

	return Article{
		ID:          id,
		Title:       title,
		Description: desc,
		Link:        item.Link,
		PubDate:     pubDate,
		Source:      f.source.Name,
		SourceURL:   f.source.URL,
		Category:    f.source.Category,
		Timestamp:   published.UnixMilli(),
	}
}

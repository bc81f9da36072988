package collector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"github.com/yuhao2046/AINewsHub/internal/config"
)

// BoardFetcher 抓取没有 RSS 的热榜页面，选择器由源配置给出。
// 页面结构可能调整，解析是"尽力而为"：取不到的字段按兜底规则补齐。
type BoardFetcher struct {
	source  config.Source
	timeout time.Duration
}

func NewBoardFetcher(source config.Source, timeout time.Duration) *BoardFetcher {
	return &BoardFetcher{source: source, timeout: timeout}
}

func (b *BoardFetcher) Name() string {
	return b.source.Name
}

func (b *BoardFetcher) Fetch(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sel := b.source.Board
	if sel.Item == "" || sel.Title == "" {
		return nil, fmt.Errorf("board %s: missing selectors", b.source.Name)
	}

	c := colly.NewCollector(colly.UserAgent("AINewsHubBot/1.0"))
	c.SetRequestTimeout(b.timeout)

	now := time.Now()
	results := make([]Article, 0, 50)

	c.OnHTML(sel.Item, func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildText(sel.Title))
		if title == "" {
			return
		}

		link := b.source.URL
		if sel.Link != "" {
			if href := e.ChildAttr(sel.Link, "href"); href != "" {
				link = e.Request.AbsoluteURL(href)
			}
		}

		desc := ""
		if sel.Desc != "" {
			desc = strings.TrimSpace(e.ChildText(sel.Desc))
		}
		// 热榜条目常常只有标题，介绍文案位置不固定：取块内最长的一段文本兜底
		if desc == "" {
			desc = longestTextBlock(e.DOM, title)
		}
		desc = truncateRunes(strings.Join(strings.Fields(desc), " "), maxDescriptionRunes)

		results = append(results, Article{
			ID:          link,
			Title:       title,
			Description: desc,
			Link:        link,
			PubDate:     now.Format(time.RFC3339),
			Source:      b.source.Name,
			SourceURL:   b.source.URL,
			Category:    b.source.Category,
			// 热榜页面没有发布时间，视作抓取时刻
			Timestamp: now.UnixMilli(),
		})
	})

	if err := c.Visit(b.source.URL); err != nil {
		return nil, fmt.Errorf("board %s: %w", b.source.Name, err)
	}

	return results, nil
}

// longestTextBlock 在条目块内找最像介绍文案的一段：非标题、足够长的最长文本
func longestTextBlock(dom *goquery.Selection, title string) string {
	const minLen = 20
	var best string
	dom.Find("div, p, span").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t == "" || t == title || len(t) < minLen {
			return
		}
		if len(t) > len(best) {
			best = t
		}
	})
	return best
}

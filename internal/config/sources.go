package config

// 新闻分类（闭集）。"全部" 仅作为查询参数的哨兵值，不会出现在文章上。
const (
	CategoryDomestic = "国内"
	CategoryForeign  = "国外"
	CategoryAll      = "全部"
)

// ValidCategory 判断文章分类是否属于闭集
func ValidCategory(c string) bool {
	return c == CategoryDomestic || c == CategoryForeign
}

// 源类型：rss 走 feed 解析；board 抓取热榜页面（无 RSS 的站点）
const (
	SourceKindRSS   = "rss"
	SourceKindBoard = "board"
)

// BoardSelectors 描述热榜页面的条目结构
type BoardSelectors struct {
	Item  string // 单条新闻所在的块
	Title string
	Link  string
	Desc  string
}

// Source 描述一个新闻源，静态配置，运行期只读
type Source struct {
	Name     string
	URL      string
	Category string
	Kind     string // 空值等同于 rss
	Board    BoardSelectors
}

// Sources 返回全部订阅源。聚合时按 EnabledCategories 过滤。
func Sources() []Source {
	return []Source{
		// 国内源
		{Name: "机器之心", URL: "https://www.jiqizhixin.com/rss", Category: CategoryDomestic},
		{Name: "量子位", URL: "https://www.qbitai.com/feed", Category: CategoryDomestic},
		{Name: "虎嗅网", URL: "https://www.huxiu.com/rss/0.xml", Category: CategoryDomestic},
		{Name: "钛媒体", URL: "https://www.tmtpost.com/rss", Category: CategoryDomestic},
		{Name: "雷锋网", URL: "https://www.leiphone.com/feed", Category: CategoryDomestic},
		{Name: "爱范儿", URL: "https://www.ifanr.com/feed", Category: CategoryDomestic},
		{Name: "智东西", URL: "https://zhidx.com/rss", Category: CategoryDomestic},
		{Name: "少数派", URL: "https://sspai.com/feed", Category: CategoryDomestic},
		{Name: "博客园", URL: "https://www.cnblogs.com/rss", Category: CategoryDomestic},
		{Name: "开源中国", URL: "https://www.oschina.net/news/rss", Category: CategoryDomestic},
		{Name: "掘金", URL: "https://juejin.cn/rss", Category: CategoryDomestic},
		// 百度热搜没有 RSS，走页面抓取
		{
			Name:     "百度热搜",
			URL:      "https://top.baidu.com/board?tab=tech",
			Category: CategoryDomestic,
			Kind:     SourceKindBoard,
			Board: BoardSelectors{
				Item:  "div.category-wrap_iQLoo",
				Title: "div.c-single-text-ellipsis",
				Link:  "a",
				Desc:  "div[class*='content']",
			},
		},
		// 国外源（默认不聚合，开启 国外 分类后生效）
		{Name: "OpenAI Blog", URL: "https://openai.com/blog/rss.xml", Category: CategoryForeign},
		{Name: "Google AI Blog", URL: "https://blog.google/technology/ai/rss/", Category: CategoryForeign},
		{Name: "MIT Technology Review", URL: "https://www.technologyreview.com/feed/", Category: CategoryForeign},
		{Name: "VentureBeat AI", URL: "https://venturebeat.com/category/ai/feed/", Category: CategoryForeign},
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: CategoryForeign},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: CategoryForeign},
	}
}

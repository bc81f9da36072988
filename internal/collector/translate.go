package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/yuhao2046/AINewsHub/internal/config"
)

const (
	translateMaxLen           = 500
	translateMaxResponseBytes = 256 * 1024
	translateClientTimeout    = 20 * time.Second
)

// Translator 把国外新闻的英文标题翻成中文。
// 外部翻译接口有速率限制，所以串行处理、每次调用之间固定间隔，
// 且单轮最多处理 limit 条；失败保留原标题。
type Translator struct {
	client   *http.Client
	limit    int
	interval time.Duration
}

func NewTranslator(limit int, interval time.Duration) *Translator {
	return &Translator{
		client:   &http.Client{Timeout: translateClientTimeout},
		limit:    limit,
		interval: interval,
	}
}

// TranslateTitles 就地翻译列表中的国外新闻标题，返回同一列表。
// 只处理含拉丁字母、尚未翻译过的标题。
func (t *Translator) TranslateTitles(items []Article) []Article {
	translated := 0
	for i := range items {
		if translated >= t.limit {
			break
		}
		if items[i].Category != config.CategoryForeign || items[i].IsTranslated {
			continue
		}
		if !containsLatin(items[i].Title) {
			continue
		}

		out := t.translateToChinese(items[i].Title)
		if out != "" && out != items[i].Title {
			items[i].OriginalTitle = items[i].Title
			items[i].Title = out + " (译)"
			items[i].IsTranslated = true
			translated++
		}

		// 固定间隔的节流闸，避免触发下游限流
		time.Sleep(t.interval)
	}
	return items
}

func containsLatin(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

func isMostlyChinese(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	var cjk, total int
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if isCJK(r) {
			cjk++
		}
	}
	if total == 0 {
		return true
	}
	return cjk >= 1 && (cjk*4 >= total || cjk >= 2)
}

func isCJK(r rune) bool {
	if r >= 0x4e00 && r <= 0x9fff {
		return true
	}
	if r >= 0x3400 && r <= 0x4dbf {
		return true
	}
	if r >= 0x3000 && r <= 0x303f {
		return true
	}
	return false
}

// translateToChinese 依次尝试 Google Translate 直接 API → MyMemory，均失败则返回空串
func (t *Translator) translateToChinese(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || isMostlyChinese(text) {
		return ""
	}
	if rs := []rune(text); len(rs) > translateMaxLen {
		text = string(rs[:translateMaxLen])
	}

	if out := t.translateViaGoogle(text); out != "" {
		return out
	}
	return t.translateViaMyMemory(text)
}

// translateViaGoogle 使用 Google Translate 公开 API（client=gtx，无需密钥）
func (t *Translator) translateViaGoogle(text string) string {
	apiURL := fmt.Sprintf(
		"https://translate.googleapis.com/translate_a/single?client=gtx&sl=auto&tl=zh-CN&dt=t&q=%s",
		url.QueryEscape(text),
	)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := t.client.Do(req)
	if err != nil {
		log.Printf("translate (google-gtx): %v", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("translate (google-gtx): status %d", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, translateMaxResponseBytes))
	if err != nil {
		return ""
	}

	// 响应格式: [[["翻译文本","原文",...],...],...]
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Printf("translate (google-gtx): decode error: %v", err)
		return ""
	}
	if len(raw) == 0 {
		return ""
	}

	outer, ok := raw[0].([]any)
	if !ok {
		return ""
	}
	var result strings.Builder
	for _, seg := range outer {
		pair, ok := seg.([]any)
		if !ok || len(pair) < 1 {
			continue
		}
		if s, ok := pair[0].(string); ok {
			result.WriteString(s)
		}
	}
	return strings.TrimSpace(result.String())
}

func (t *Translator) translateViaMyMemory(text string) string {
	apiURL := "https://api.mymemory.translated.net/get?langpair=en|zh&q=" + url.QueryEscape(text)
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	resp, err := t.client.Do(req)
	if err != nil {
		log.Printf("translate (mymemory): %v", err)
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("translate (mymemory): status %d", resp.StatusCode)
		return ""
	}
	var out struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, translateMaxResponseBytes)).Decode(&out); err != nil {
		return ""
	}
	return strings.TrimSpace(out.ResponseData.TranslatedText)
}

package scorer

import (
	"unicode/utf8"

	"github.com/yuhao2046/AINewsHub/internal/collector"
	"github.com/yuhao2046/AINewsHub/internal/config"
)

// Scorer 计算文章热度：新近度、来源权威性、标题长度、描述长度四项加权。
// 权重与权威表在构造时注入，运行期只读。
type Scorer struct {
	weights   config.HotnessWeights
	authority map[string]float64
}

// 未收录来源的默认权威分
const defaultAuthority = 60

func New(weights config.HotnessWeights, authority map[string]float64) *Scorer {
	return &Scorer{weights: weights, authority: authority}
}

// Score 返回热度分。结果是相对排序信号，没有固定上界。
func (s *Scorer) Score(a collector.Article, nowMs int64) float64 {
	return recencyScore(a.Timestamp, nowMs)*s.weights.Recency +
		s.authorityScore(a.Source)*s.weights.SourceAuthority +
		titleScore(a.Title)*s.weights.TitleLength +
		descriptionScore(a.Description)*s.weights.DescriptionLength
}

// recencyScore 线性衰减：每小时扣 5 分，20 小时以上记 0
func recencyScore(timestampMs, nowMs int64) float64 {
	hours := float64(nowMs-timestampMs) / (1000 * 60 * 60)
	score := 100 - hours*5
	if score < 0 {
		return 0
	}
	return score
}

func (s *Scorer) authorityScore(source string) float64 {
	if v, ok := s.authority[source]; ok {
		return v
	}
	return defaultAuthority
}

// titleScore 20-80 字的标题信息量适中记满分，过短/过长递减
func titleScore(title string) float64 {
	n := utf8.RuneCountInString(title)
	switch {
	case n >= 20 && n <= 80:
		return 100
	case n < 20:
		return 60 + float64(n)
	default:
		score := 100 - float64(n-80)*0.5
		if score < 60 {
			return 60
		}
		return score
	}
}

// descriptionScore 描述越充实分越高，封顶 100
func descriptionScore(desc string) float64 {
	score := float64(utf8.RuneCountInString(desc)) / 3
	if score > 100 {
		return 100
	}
	return score
}

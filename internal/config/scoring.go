package config

// HotnessWeights 热度各子项的权重，总和应为 1.0
type HotnessWeights struct {
	Recency           float64
	SourceAuthority   float64
	TitleLength       float64
	DescriptionLength float64
}

// DefaultWeights 默认热度权重
func DefaultWeights() HotnessWeights {
	return HotnessWeights{
		Recency:           0.4,
		SourceAuthority:   0.3,
		TitleLength:       0.1,
		DescriptionLength: 0.2,
	}
}

// AuthorityScores 来源权威性打分表，0-100；未收录的源在打分时取 60
func AuthorityScores() map[string]float64 {
	return map[string]float64{
		"OpenAI Blog":           95,
		"Google AI Blog":        95,
		"NVIDIA Blog":           90,
		"MIT Technology Review": 88,
		"VentureBeat AI":        85,
		"TechCrunch":            80,
		"Wired":                 78,
		"The Verge":             75,
		"机器之心":                  85,
		"量子位":                   85,
		"36氪":                   78,
		"虎嗅网":                   75,
		"钛媒体":                   73,
		"InfoQ":                 75,
		"雷锋网":                   70,
		"爱范儿":                   70,
		"极客公园":                  72,
		"智东西":                   73,
		"少数派":                   68,
		"新智元":                   72,
		"CSDN":                  65,
		"博客园":                   62,
		"开源中国":                  70,
		"SegmentFault":          68,
		"掘金":                    65,
		"开发者头条":                 60,
		"码农网":                   58,
	}
}

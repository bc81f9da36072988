package config

// KeywordSets 相关性判定使用的词表。全部做小写子串匹配，
// 调整词表会直接改变筛选结果，新增词条前先跑一遍 classify 的测试。
type KeywordSets struct {
	// 主题词：命中任意一个即认为与 AI 相关
	Topic []string
	// 教程词：出现在标题里视为低价值教程类内容
	Tutorial []string
	// 教程短语：短标题（<30 字）命中这些开头式短语也视为教程
	TutorialPhrases []string
	// 通用技术黑话：全文命中 >=3 个不同词条视为纯工程向噪音
	Jargon []string
}

// DefaultKeywords 默认词表
func DefaultKeywords() KeywordSets {
	return KeywordSets{
		Topic: []string{
			"ai", "人工智能", "大模型", "机器学习", "深度学习", "神经网络",
			"llm", "gpt", "chatgpt", "openai", "claude", "anthropic",
			"gemini", "deepseek", "llama", "sora", "midjourney", "stable diffusion",
			"通义", "文心", "豆包", "kimi", "智谱", "混元", "星火",
			"智能体", "agent", "多模态", "transformer", "aigc", "生成式",
			"算力", "英伟达", "nvidia", "gpu", "芯片",
			"自动驾驶", "具身智能", "机器人", "人形机器人",
			"融资", "估值", "监管", "备案",
		},
		Tutorial: []string{
			"教程", "入门", "指南", "手把手", "从零开始", "零基础",
			"快速上手", "保姆级", "实操",
			"tutorial", "guide", "beginner", "step-by-step", "how to",
		},
		TutorialPhrases: []string{
			"如何", "怎么", "怎样", "搭建", "配置", "安装", "部署",
		},
		Jargon: []string{
			"docker", "nginx", "redis", "mysql", "postgresql", "mongodb",
			"kubernetes", "k8s", "linux", "git", "vue", "react", "spring",
			"微服务", "容器", "运维", "前端", "后端", "数据库", "接口调试",
		},
	}
}

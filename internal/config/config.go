package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppPort string

	// 以下两项留空表示关闭对应能力（历史归档 / 快照缓存），核心管线纯内存运行
	PostgresDSN string
	RedisAddr   string

	CronSpec string

	// 单个源的抓取超时
	FetchTimeout time.Duration

	// 聚合缓存的有效期，超过后下一次请求触发重新聚合
	CacheTTL time.Duration

	// 参与聚合的分类（逗号分隔），默认只聚合国内源
	EnabledCategories []string

	// 标题翻译（默认关闭；外部 API 有速率限制）
	TranslateEnabled  bool
	TranslateLimit    int
	TranslateInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "9000"),
		PostgresDSN:       getEnv("POSTGRES_DSN", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CronSpec:          getEnv("CRON_SPEC", "0 */2 * * *"),
		FetchTimeout:      getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		CacheTTL:          getEnvDuration("CACHE_TTL", 2*time.Hour),
		EnabledCategories: splitCSV(getEnv("ENABLED_CATEGORIES", CategoryDomestic)),
		TranslateEnabled:  getEnvBool("TRANSLATE_ENABLED", false),
		TranslateLimit:    getEnvInt("TRANSLATE_LIMIT", 50),
		TranslateInterval: getEnvDuration("TRANSLATE_INTERVAL", 200*time.Millisecond),
	}

	log.Printf("config loaded: port=%s cron=%s categories=%v translate=%v",
		cfg.AppPort, cfg.CronSpec, cfg.EnabledCategories, cfg.TranslateEnabled)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

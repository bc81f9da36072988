package config

import (
	"os"
	"testing"
	"time"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 环境变量未设置时，应该返回默认值
	_ = os.Unsetenv(key)
	if got := getEnv(key, "9000"); got != "9000" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "9000")
	}

	// 环境变量设置后，应优先返回环境变量
	if err := os.Setenv(key, "8080"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "9000"); got != "8080" {
		t.Fatalf("getEnv(%q) = %q, want %q", key, got, "8080")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "ENABLED_CATEGORIES", "FETCH_TIMEOUT", "TRANSLATE_ENABLED"} {
		_ = os.Unsetenv(k)
	}

	cfg := Load()
	if cfg.AppPort != "9000" {
		t.Fatalf("AppPort = %q, want 9000", cfg.AppPort)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.CacheTTL != 2*time.Hour {
		t.Fatalf("CacheTTL = %v, want 2h", cfg.CacheTTL)
	}
	if len(cfg.EnabledCategories) != 1 || cfg.EnabledCategories[0] != CategoryDomestic {
		t.Fatalf("EnabledCategories = %v, want [%s]", cfg.EnabledCategories, CategoryDomestic)
	}
	if cfg.TranslateEnabled {
		t.Fatal("TranslateEnabled should default to false")
	}
}

func TestLoadEnabledCategoriesCSV(t *testing.T) {
	_ = os.Setenv("ENABLED_CATEGORIES", "国内, 国外")
	defer os.Unsetenv("ENABLED_CATEGORIES")

	cfg := Load()
	if len(cfg.EnabledCategories) != 2 {
		t.Fatalf("EnabledCategories = %v, want two entries", cfg.EnabledCategories)
	}
	if cfg.EnabledCategories[1] != CategoryForeign {
		t.Fatalf("second category = %q, want %q", cfg.EnabledCategories[1], CategoryForeign)
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	sum := w.Recency + w.SourceAuthority + w.TitleLength + w.DescriptionLength
	if sum < 0.999 || sum > 1.001 {
		t.Fatalf("weights sum = %v, want 1.0", sum)
	}
}

func TestSourcesHaveValidCategories(t *testing.T) {
	for _, s := range Sources() {
		if !ValidCategory(s.Category) {
			t.Fatalf("source %q has invalid category %q", s.Name, s.Category)
		}
		if s.URL == "" {
			t.Fatalf("source %q has empty URL", s.Name)
		}
	}
}

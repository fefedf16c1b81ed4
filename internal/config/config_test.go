package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("BTC_REFRESH_SECS", "")
	t.Setenv("HTTP_PORT", "")

	cfg := Load()
	if cfg.RefreshSecs != 60 {
		t.Fatalf("expected default refresh secs 60, got %d", cfg.RefreshSecs)
	}
	if cfg.HTTPPort != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.HTTPPort)
	}
	if cfg.BlockchairBaseURL != "" || cfg.CoinGeckoBaseURL != "" || cfg.FearGreedBaseURL != "" {
		t.Fatalf("expected empty base URL overrides, got %+v", cfg)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("REDIS_URL", "redis:6379")
	t.Setenv("BTC_REFRESH_SECS", "120")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("COINGECKO_BASE_URL", "http://localhost:9999")

	cfg := Load()
	if cfg.TelegramBotToken != "token" || cfg.RedisURL != "redis:6379" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.RefreshSecs != 120 || cfg.HTTPPort != 9090 {
		t.Fatalf("unexpected numeric config: %+v", cfg)
	}
	if cfg.CoinGeckoBaseURL != "http://localhost:9999" {
		t.Fatalf("unexpected base URL: %s", cfg.CoinGeckoBaseURL)
	}

	t.Setenv("BTC_REFRESH_SECS", "bad")
	cfg = Load()
	if cfg.RefreshSecs != 60 {
		t.Fatalf("invalid refresh secs should fall back to default, got %d", cfg.RefreshSecs)
	}
}

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	TelegramBotToken string
	RedisURL         string
	RefreshSecs      int
	HTTPPort         int

	BlockchairBaseURL string
	CoinGeckoBaseURL  string
	FearGreedBaseURL  string
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		RedisURL:          os.Getenv("REDIS_URL"),
		BlockchairBaseURL: strings.TrimSpace(os.Getenv("BLOCKCHAIR_BASE_URL")),
		CoinGeckoBaseURL:  strings.TrimSpace(os.Getenv("COINGECKO_BASE_URL")),
		FearGreedBaseURL:  strings.TrimSpace(os.Getenv("FEARGREED_BASE_URL")),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, Telegram bot will be disabled")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, snapshot publishing will be disabled")
	}

	cfg.RefreshSecs = 60
	if v := strings.TrimSpace(os.Getenv("BTC_REFRESH_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshSecs = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	return cfg
}

package bot

import (
	"strings"
	"testing"

	"btc-pulse/internal/domain"
)

func TestStartTelegramBotSkipsWithoutToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	StartTelegramBot(nil)
}

func TestFormatDashboard(t *testing.T) {
	snap := domain.Dashboard{
		Market:    &domain.MarketSnapshot{PriceUSD: 97000.5, PriceChange24hPct: 2.34, PriceChange7dPct: -1.2, MarketCapUSD: 1.9e12},
		Block:     &domain.BlockSnapshot{Height: 820000, SizeBytes: 1400000},
		Sentiment: &domain.SentimentSnapshot{Value: 63, Classification: "Greed", Glyph: "😏"},
	}

	msg := formatDashboard(snap)
	for _, want := range []string{"$97000.50", "#820000", "63 Greed 😏"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in message:\n%s", want, msg)
		}
	}
}

func TestFormatDashboardEmptyAndErrored(t *testing.T) {
	msg := formatDashboard(domain.Dashboard{LastError: "market: timeout"})
	if !strings.Contains(msg, "No data yet") {
		t.Fatalf("expected empty-state notice, got:\n%s", msg)
	}
	if !strings.Contains(msg, "market: timeout") {
		t.Fatalf("expected last error, got:\n%s", msg)
	}
}

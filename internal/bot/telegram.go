package bot

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"btc-pulse/internal/dashboard"
	"btc-pulse/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// StartTelegramBot serves the current dashboard over Telegram. It is a
// read-only consumer of the aggregate state and is skipped entirely when no
// token is configured.
func StartTelegramBot(state *dashboard.State) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/btc", func(c tele.Context) error {
		return c.Send(formatDashboard(state.Snapshot()))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

func formatDashboard(snap domain.Dashboard) string {
	var sb strings.Builder
	sb.WriteString("Bitcoin Dashboard\n")

	if snap.Market != nil {
		fmt.Fprintf(&sb, "Price: $%.2f\n24h: %.2f%%  7d: %.2f%%\nMarket Cap: $%.0f\n",
			snap.Market.PriceUSD, snap.Market.PriceChange24hPct, snap.Market.PriceChange7dPct, snap.Market.MarketCapUSD)
	}
	if snap.Block != nil {
		fmt.Fprintf(&sb, "Latest Block: #%d (%d bytes)\n", snap.Block.Height, snap.Block.SizeBytes)
	}
	if snap.Sentiment != nil {
		fmt.Fprintf(&sb, "Sentiment: %d %s %s\n", snap.Sentiment.Value, snap.Sentiment.Classification, snap.Sentiment.Glyph)
	}
	if snap.Block == nil && snap.Market == nil && snap.Sentiment == nil {
		sb.WriteString("No data yet, first refresh pending\n")
	}
	if snap.LastError != "" {
		fmt.Fprintf(&sb, "Last error: %s\n", snap.LastError)
	}

	return strings.TrimRight(sb.String(), "\n")
}

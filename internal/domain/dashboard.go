package domain

import "time"

// BlockSnapshot holds the most recent Bitcoin block, replaced wholesale on
// every successful block fetch.
type BlockSnapshot struct {
	Height     int64   `json:"height"`
	Hash       string  `json:"hash"`
	SizeBytes  int64   `json:"size_bytes"`
	Difficulty float64 `json:"difficulty"`
	Weight     int64   `json:"weight"`
}

// MarketSnapshot holds current USD-denominated market metrics.
type MarketSnapshot struct {
	PriceUSD          float64 `json:"price_usd"`
	MarketCapUSD      float64 `json:"market_cap_usd"`
	Volume24hUSD      float64 `json:"volume_24h_usd"`
	PriceChange24hPct float64 `json:"price_change_24h_pct"`
	PriceChange7dPct  float64 `json:"price_change_7d_pct"`
}

// PriceSeries is a chart-ready slice of the trailing 24 price points in
// chronological order. Labels and Values are index-aligned.
type PriceSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// SentimentSnapshot is the latest Fear & Greed index reading. Glyph is the
// presentation symbol for Classification; unknown classifications carry an
// empty glyph.
type SentimentSnapshot struct {
	Value          int    `json:"value"`
	Classification string `json:"classification"`
	Glyph          string `json:"glyph"`
}

// Dashboard is the aggregate of the four source snapshots. Each field is nil
// until its source first succeeds, and afterwards always holds that source's
// last successful result. LastError carries the message of the most recent
// failed fetch; it is empty after a fully successful cycle.
type Dashboard struct {
	Block     *BlockSnapshot     `json:"block,omitempty"`
	Market    *MarketSnapshot    `json:"market,omitempty"`
	Series    *PriceSeries       `json:"series,omitempty"`
	Sentiment *SentimentSnapshot `json:"sentiment,omitempty"`
	LastError string             `json:"last_error,omitempty"`
	UpdatedAt time.Time          `json:"updated_at"`
}

var classificationGlyphs = map[string]string{
	"Extreme Fear":  "😱",
	"Fear":          "😨",
	"Neutral":       "😐",
	"Greed":         "😏",
	"Extreme Greed": "🤑",
}

// ClassificationGlyph returns the display glyph for a Fear & Greed
// classification. Unrecognized classifications return "".
func ClassificationGlyph(classification string) string {
	return classificationGlyphs[classification]
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// seriesPoints is how many trailing chart points the dashboard keeps.
const seriesPoints = 24

// CoinGeckoProvider fetches Bitcoin market metrics and the 2-day price
// chart from the CoinGecko free API.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
}

// NewCoinGeckoProvider creates a new provider with built-in rate limiting.
// Rate limited to 8 requests per minute (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer, baseURL string) *CoinGeckoProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = coingeckoBaseURL
	}
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
	}
}

// FetchMarket fetches current USD market metrics for Bitcoin.
func (p *CoinGeckoProvider) FetchMarket(ctx context.Context) (*domain.MarketSnapshot, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-market")
	defer span.End()

	url := p.baseURL + "/coins/bitcoin?localization=false&tickers=false&community_data=false&developer_data=false"
	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}

	var raw struct {
		MarketData struct {
			CurrentPrice      map[string]float64 `json:"current_price"`
			MarketCap         map[string]float64 `json:"market_cap"`
			TotalVolume       map[string]float64 `json:"total_volume"`
			PriceChange24hPct *float64           `json:"price_change_percentage_24h"`
			PriceChange7dPct  *float64           `json:"price_change_percentage_7d"`
		} `json:"market_data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market data: %w", err)
	}

	md := raw.MarketData
	price, ok := md.CurrentPrice["usd"]
	if !ok {
		return nil, fmt.Errorf("market data missing market_data.current_price.usd")
	}
	marketCap, ok := md.MarketCap["usd"]
	if !ok {
		return nil, fmt.Errorf("market data missing market_data.market_cap.usd")
	}
	volume, ok := md.TotalVolume["usd"]
	if !ok {
		return nil, fmt.Errorf("market data missing market_data.total_volume.usd")
	}
	if md.PriceChange24hPct == nil {
		return nil, fmt.Errorf("market data missing market_data.price_change_percentage_24h")
	}
	if md.PriceChange7dPct == nil {
		return nil, fmt.Errorf("market data missing market_data.price_change_percentage_7d")
	}

	return &domain.MarketSnapshot{
		PriceUSD:          price,
		MarketCapUSD:      marketCap,
		Volume24hUSD:      volume,
		PriceChange24hPct: *md.PriceChange24hPct,
		PriceChange7dPct:  *md.PriceChange7dPct,
	}, nil
}

// FetchPriceSeries fetches the 2-day market chart and keeps the trailing 24
// points, each labeled with its local hour of day.
func (p *CoinGeckoProvider) FetchPriceSeries(ctx context.Context) (*domain.PriceSeries, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-price-series")
	defer span.End()

	url := p.baseURL + "/coins/bitcoin/market_chart?vs_currency=usd&days=2"
	body, err := p.doRequest(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart: %w", err)
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse market chart: %w", err)
	}
	if raw.Prices == nil {
		return nil, fmt.Errorf("market chart missing prices")
	}

	return buildPriceSeries(raw.Prices, seriesPoints), nil
}

// buildPriceSeries converts raw [timestamp-ms, price] pairs into a labeled
// series, truncated to the trailing maxPoints entries in original order.
func buildPriceSeries(prices [][]float64, maxPoints int) *domain.PriceSeries {
	series := &domain.PriceSeries{
		Labels: make([]string, 0, maxPoints),
		Values: make([]float64, 0, maxPoints),
	}

	start := 0
	if len(prices) > maxPoints {
		start = len(prices) - maxPoints
	}
	for _, pt := range prices[start:] {
		if len(pt) < 2 {
			continue
		}
		t := time.UnixMilli(int64(pt[0]))
		series.Labels = append(series.Labels, fmt.Sprintf("%d:00", t.Hour()))
		series.Values = append(series.Values, pt[1])
	}

	return series
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, url string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const fearGreedBaseURL = "https://api.alternative.me"

// FearGreedProvider fetches the crypto Fear & Greed index from
// alternative.me.
type FearGreedProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewFearGreedProvider(tracer trace.Tracer, baseURL string) *FearGreedProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = fearGreedBaseURL
	}
	return &FearGreedProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracer,
	}
}

// FetchSentiment returns the latest index reading. An unrecognized
// classification is not an error; it just carries no glyph.
func (p *FearGreedProvider) FetchSentiment(ctx context.Context) (*domain.SentimentSnapshot, error) {
	_, span := p.tracer.Start(ctx, "feargreed.fetch-sentiment")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/fng/?limit=1", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sentiment index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fear & greed API error %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Data []struct {
			Value          string `json:"value"`
			Classification string `json:"value_classification"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode fear & greed response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("fear & greed response has no rows")
	}

	row := payload.Data[0]
	value, err := strconv.Atoi(strings.TrimSpace(row.Value))
	if err != nil {
		return nil, fmt.Errorf("parse fear & greed value: %w", err)
	}

	return &domain.SentimentSnapshot{
		Value:          value,
		Classification: row.Classification,
		Glyph:          domain.ClassificationGlyph(row.Classification),
	}, nil
}

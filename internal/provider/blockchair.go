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

const blockchairBaseURL = "https://api.blockchair.com"

// BlockchairProvider fetches the most recent Bitcoin block from Blockchair.
type BlockchairProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewBlockchairProvider(tracer trace.Tracer, baseURL string) *BlockchairProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = blockchairBaseURL
	}
	return &BlockchairProvider{
		client:  &http.Client{Timeout: 20 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracer,
	}
}

// FetchLatestBlock returns the newest block on the chain.
func (p *BlockchairProvider) FetchLatestBlock(ctx context.Context) (*domain.BlockSnapshot, error) {
	_, span := p.tracer.Start(ctx, "blockchair.fetch-latest-block")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/bitcoin/blocks?limit=1", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest block: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("blockchair API error %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Data []struct {
			ID         int64   `json:"id"`
			Hash       string  `json:"hash"`
			Size       int64   `json:"size"`
			Difficulty float64 `json:"difficulty"`
			Weight     int64   `json:"weight"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode blockchair payload: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("blockchair payload has no blocks")
	}

	row := payload.Data[0]
	return &domain.BlockSnapshot{
		Height:     row.ID,
		Hash:       row.Hash,
		SizeBytes:  row.Size,
		Difficulty: row.Difficulty,
		Weight:     row.Weight,
	}, nil
}

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"btc-pulse/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	snapshotKey = "dashboard:latest"
	snapshotTTL = 90 * time.Second
)

type BlockReader interface {
	FetchLatestBlock(ctx context.Context) (*domain.BlockSnapshot, error)
}

type MarketReader interface {
	FetchMarket(ctx context.Context) (*domain.MarketSnapshot, error)
}

type SeriesReader interface {
	FetchPriceSeries(ctx context.Context) (*domain.PriceSeries, error)
}

type SentimentReader interface {
	FetchSentiment(ctx context.Context) (*domain.SentimentSnapshot, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Service runs refresh cycles: it fans out to the four source adapters,
// waits for all of them to settle, and merges the successes into State.
// A failed source leaves its field at the last good value.
type Service struct {
	tracer    trace.Tracer
	block     BlockReader
	market    MarketReader
	series    SeriesReader
	sentiment SentimentReader
	state     *State
	redis     RedisClient
}

func NewService(
	tracer trace.Tracer,
	block BlockReader,
	market MarketReader,
	series SeriesReader,
	sentiment SentimentReader,
	redisClient RedisClient,
) *Service {
	return &Service{
		tracer:    tracer,
		block:     block,
		market:    market,
		series:    series,
		sentiment: sentiment,
		state:     NewState(),
		redis:     redisClient,
	}
}

// State exposes the owned dashboard state for read-only consumers.
func (s *Service) State() *State {
	return s.state
}

// outcome is one adapter's settled result for a cycle. apply is nil when
// the fetch failed.
type outcome struct {
	source string
	apply  func(*domain.Dashboard)
	err    error
}

// RunCycle fetches all four sources concurrently and merges the results.
// It never returns an error: per-source failures surface only through the
// dashboard's LastError field. The returned dashboard is the post-cycle
// snapshot.
func (s *Service) RunCycle(ctx context.Context) domain.Dashboard {
	_, span := s.tracer.Start(ctx, "dashboard.run-cycle")
	defer span.End()

	// Fixed slots keep the merge order deterministic regardless of which
	// fetch settles first.
	outcomes := make([]outcome, 4)
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		block, err := s.block.FetchLatestBlock(ctx)
		outcomes[0] = outcome{source: "block", err: err}
		if err == nil {
			outcomes[0].apply = func(d *domain.Dashboard) { d.Block = block }
		}
	}()
	go func() {
		defer wg.Done()
		market, err := s.market.FetchMarket(ctx)
		outcomes[1] = outcome{source: "market", err: err}
		if err == nil {
			outcomes[1].apply = func(d *domain.Dashboard) { d.Market = market }
		}
	}()
	go func() {
		defer wg.Done()
		series, err := s.series.FetchPriceSeries(ctx)
		outcomes[2] = outcome{source: "series", err: err}
		if err == nil {
			outcomes[2].apply = func(d *domain.Dashboard) { d.Series = series }
		}
	}()
	go func() {
		defer wg.Done()
		sentiment, err := s.sentiment.FetchSentiment(ctx)
		outcomes[3] = outcome{source: "sentiment", err: err}
		if err == nil {
			outcomes[3].apply = func(d *domain.Dashboard) { d.Sentiment = sentiment }
		}
	}()

	wg.Wait()

	now := time.Now().UTC()
	s.state.apply(func(d *domain.Dashboard) {
		// Last failure in slot order wins; a clean cycle clears the error.
		lastErr := ""
		for _, o := range outcomes {
			if o.err != nil {
				lastErr = fmt.Sprintf("%s: %v", o.source, o.err)
				continue
			}
			o.apply(d)
		}
		d.LastError = lastErr
		d.UpdatedAt = now
	})

	snap := s.state.Snapshot()
	s.publishSnapshot(ctx, snap)
	return snap
}

// publishSnapshot mirrors the latest dashboard into Redis so external
// consumers can poll it. Best effort; never fails the cycle.
func (s *Service) publishSnapshot(ctx context.Context, snap domain.Dashboard) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("marshal dashboard snapshot: %v", err)
		return
	}
	if err := s.redis.Set(ctx, snapshotKey, data, snapshotTTL).Err(); err != nil {
		log.Printf("redis snapshot publish error: %v", err)
	}
}

package dashboard

import (
	"sync"

	"btc-pulse/internal/domain"
)

// State owns the aggregate dashboard. Only the refresh cycle writes it;
// everything else reads copies through Snapshot. Updates delivers a
// coalesced notification after each completed cycle.
type State struct {
	mu      sync.RWMutex
	current domain.Dashboard
	updates chan struct{}
}

func NewState() *State {
	return &State{updates: make(chan struct{}, 1)}
}

// Snapshot returns a copy of the current dashboard. Slices in the price
// series are cloned so readers can hold the snapshot across cycles.
func (s *State) Snapshot() domain.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDashboard(s.current)
}

// Updates signals after each completed cycle. The channel is buffered and
// coalescing: a slow reader sees at least one pending signal, not a backlog.
func (s *State) Updates() <-chan struct{} {
	return s.updates
}

// apply runs fn against the owned dashboard under the write lock and then
// notifies subscribers. Called only from the refresh cycle.
func (s *State) apply(fn func(*domain.Dashboard)) {
	s.mu.Lock()
	fn(&s.current)
	s.mu.Unlock()

	select {
	case s.updates <- struct{}{}:
	default:
	}
}

func cloneDashboard(d domain.Dashboard) domain.Dashboard {
	out := d
	if d.Block != nil {
		block := *d.Block
		out.Block = &block
	}
	if d.Market != nil {
		market := *d.Market
		out.Market = &market
	}
	if d.Series != nil {
		series := domain.PriceSeries{
			Labels: append([]string(nil), d.Series.Labels...),
			Values: append([]float64(nil), d.Series.Values...),
		}
		out.Series = &series
	}
	if d.Sentiment != nil {
		sentiment := *d.Sentiment
		out.Sentiment = &sentiment
	}
	return out
}

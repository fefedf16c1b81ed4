package dashboard

import (
	"testing"

	"btc-pulse/internal/domain"
)

func TestSnapshotIsIndependentCopy(t *testing.T) {
	state := NewState()
	state.apply(func(d *domain.Dashboard) {
		d.Series = &domain.PriceSeries{Labels: []string{"9:00"}, Values: []float64{97000}}
		d.Block = &domain.BlockSnapshot{Height: 820000}
	})

	snap := state.Snapshot()
	snap.Series.Values[0] = 0
	snap.Block.Height = 1

	again := state.Snapshot()
	if again.Series.Values[0] != 97000 {
		t.Fatalf("series mutated through snapshot: %+v", again.Series)
	}
	if again.Block.Height != 820000 {
		t.Fatalf("block mutated through snapshot: %+v", again.Block)
	}
}

func TestSnapshotEmptyState(t *testing.T) {
	state := NewState()
	snap := state.Snapshot()
	if snap.Block != nil || snap.Market != nil || snap.Series != nil || snap.Sentiment != nil {
		t.Fatalf("expected empty dashboard, got %+v", snap)
	}
	if snap.LastError != "" {
		t.Fatalf("expected no error, got %q", snap.LastError)
	}
}

func TestUpdatesCoalesce(t *testing.T) {
	state := NewState()
	state.apply(func(d *domain.Dashboard) {})
	state.apply(func(d *domain.Dashboard) {})

	select {
	case <-state.Updates():
	default:
		t.Fatal("expected a pending update signal")
	}

	select {
	case <-state.Updates():
		t.Fatal("updates should coalesce to a single pending signal")
	default:
	}
}

package job

import (
	"context"
	"log"
	"time"

	"btc-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type CycleRunner interface {
	RunCycle(ctx context.Context) domain.Dashboard
}

// RefreshJob drives the dashboard refresh cadence: one cycle immediately on
// start, then one per interval until the context is cancelled. Cycles run
// sequentially in the job goroutine, so two cycles never overlap.
type RefreshJob struct {
	tracer   trace.Tracer
	runner   CycleRunner
	interval time.Duration
}

func NewRefreshJob(tracer trace.Tracer, runner CycleRunner, refreshSecs int) *RefreshJob {
	if refreshSecs <= 0 {
		refreshSecs = 60
	}
	return &RefreshJob{
		tracer:   tracer,
		runner:   runner,
		interval: time.Duration(refreshSecs) * time.Second,
	}
}

// Start blocks until ctx is cancelled. Cancellation stops future cycles; an
// in-flight cycle finishes on its own.
func (j *RefreshJob) Start(ctx context.Context) {
	log.Println("Dashboard refresh job starting...")

	j.runOnce(ctx)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dashboard refresh job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *RefreshJob) runOnce(ctx context.Context) {
	// The job context only gates ticks. Cycles run detached so that
	// stopping the job never aborts fetches already in flight.
	cycleCtx := context.WithoutCancel(ctx)

	_, span := j.tracer.Start(cycleCtx, "refresh-job.run-once")
	defer span.End()

	snap := j.runner.RunCycle(cycleCtx)
	if snap.LastError != "" {
		log.Printf("Dashboard cycle completed with error: %s", snap.LastError)
	}
}

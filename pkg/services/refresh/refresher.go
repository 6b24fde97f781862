package refresh

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ci-tools/cloud-insight/pkg/models/domain"
	"github.com/ci-tools/cloud-insight/pkg/store/report"
)

// Refresher owns the current snapshot. Each cycle fetches and parses a
// fresh report; on success the snapshot is replaced wholesale, on failure
// the previous snapshot stays current. Snapshots are never merged or
// partially updated.
type Refresher struct {
	store    report.Store
	interval time.Duration
	current  atomic.Pointer[domain.ReportSnapshot]
}

func NewRefresher(store report.Store, interval time.Duration) *Refresher {
	return &Refresher{
		store:    store,
		interval: interval,
	}
}

// Current returns the latest successfully fetched snapshot, or nil before
// the first success.
func (r *Refresher) Current() *domain.ReportSnapshot {
	return r.current.Load()
}

// Refresh runs one fetch-and-swap cycle.
func (r *Refresher) Refresh(ctx context.Context) error {
	snap, err := r.store.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("refresh cycle failed: %w", err)
	}
	r.current.Store(snap)
	return nil
}

// Run refreshes on the configured interval until ctx is canceled. A failed
// cycle is logged and the previous snapshot stays in place.
func (r *Refresher) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				logger.Error().Err(err).Msg("report refresh failed, keeping previous snapshot")
				continue
			}
			logger.Debug().Msg("report snapshot refreshed")
		}
	}
}

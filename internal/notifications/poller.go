package notifications

import (
	"context"
	"sync/atomic"
	"time"

	"luxadmin/internal/domain/models"
	"luxadmin/internal/utils"
)

// Poller periodically re-derives the notification snapshot from the live
// booking list and pushes the resulting counts to the hub. Store mutations
// (mark-as-read) trigger an immediate refresh on top of the timer.
type Poller struct {
	Store        *Store
	Hub          *Hub
	Interval     time.Duration
	ListBookings func(ctx context.Context) ([]models.Booking, error)

	// issued and published order refreshes so that a slow fetch can never
	// overwrite the result of a newer one.
	issued    atomic.Int64
	published atomic.Int64
}

// Run blocks until ctx is done. Intended as `go poller.Run(ctx)`.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	// Coalesce mark-as-read bursts into at most one pending refresh.
	kick := make(chan struct{}, 1)
	unsubscribe := p.Store.Subscribe(func() {
		select {
		case kick <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		case <-kick:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	seq := p.issued.Add(1)

	bookings, err := p.ListBookings(ctx)
	if err != nil {
		utils.LogEvent("", "notifications", "poll", "booking list fetch failed: "+err.Error())
		return
	}

	// A newer refresh finished while we were fetching; this snapshot is
	// stale, drop it.
	if p.published.Load() >= seq {
		return
	}
	p.published.Store(seq)

	notifs := p.Store.FromBookings(bookings, utils.NowUTC())
	p.Hub.Broadcast(Update{
		UnreadCount: UnreadCount(notifs),
		Total:       len(notifs),
		Sequence:    seq,
	})
}

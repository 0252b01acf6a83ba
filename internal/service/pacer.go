package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out sends of a single broadcast. Each broadcast owns its
// pacer, so concurrent broadcasts never contend on shared pacing state.
// The first Wait returns immediately and there is no wait after the last send.
type Pacer struct {
	limiter *rate.Limiter
}

func NewPacer(delay time.Duration) *Pacer {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next send is allowed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}

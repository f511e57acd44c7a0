package sweeper

import (
	"context"
	"errors"
	"time"

	"sole-exchange/internal/exchangeerrors"
	model "sole-exchange/internal/models"
	"sole-exchange/utils"
)

// OfferSource lists open offers whose validUntil has passed.
type OfferSource interface {
	ListExpiredOpenOffers(now time.Time) ([]model.Bid, []model.Ask, error)
}

// Expirer closes a single open offer. Implemented by matching.Engine so the
// book removal happens under the market's partition lock.
type Expirer interface {
	ExpireBid(bid model.Bid) error
	ExpireAsk(ask model.Ask) error
}

// Sweeper periodically transitions open offers past their validUntil to
// expired. It never touches matched or cancelled offers: every transition is
// compare-and-swap on open, and a lost race is simply skipped.
type Sweeper struct {
	source   OfferSource
	expirer  Expirer
	interval time.Duration
	now      func() time.Time
}

// New creates a Sweeper with the given interval.
func New(source OfferSource, expirer Expirer, interval time.Duration) *Sweeper {
	return &Sweeper{
		source:   source,
		expirer:  expirer,
		interval: interval,
		now:      time.Now,
	}
}

// Run loops until the context is cancelled. Sweep errors are logged and
// retried on the next tick; they never stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	utils.Info("expiry sweeper started", map[string]any{"interval": s.interval.String()})

	for {
		select {
		case <-ctx.Done():
			utils.Info("expiry sweeper stopped", nil)
			return nil
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// Sweep runs a single pass and returns how many offers it expired.
func (s *Sweeper) Sweep() int {
	now := s.now().UTC()

	bids, asks, err := s.source.ListExpiredOpenOffers(now)
	if err != nil {
		utils.Error("sweep: listing expired offers failed", map[string]any{"error": err.Error()})
		return 0
	}

	expired := 0
	for _, bid := range bids {
		if err := s.expirer.ExpireBid(bid); err != nil {
			// Lost the race against a match or cancel; the offer is closed
			// either way.
			if errors.Is(err, exchangeerrors.ErrStatusConflict) {
				continue
			}
			utils.Warn("sweep: expiring bid failed", map[string]any{"bid_id": bid.OfferID, "error": err.Error()})
			continue
		}
		expired++
	}
	for _, ask := range asks {
		if err := s.expirer.ExpireAsk(ask); err != nil {
			if errors.Is(err, exchangeerrors.ErrStatusConflict) {
				continue
			}
			utils.Warn("sweep: expiring ask failed", map[string]any{"ask_id": ask.OfferID, "error": err.Error()})
			continue
		}
		expired++
	}

	if expired > 0 {
		utils.Info("sweep complete", map[string]any{"expired": expired})
	}
	return expired
}

package settlement

import (
	"errors"
	"fmt"

	"sole-exchange/internal/exchangeerrors"
	"sole-exchange/internal/models"
	"sole-exchange/utils"
)

// Ledger is the storage a Recorder settles against. The implementation must
// make RecordSettlement atomic and idempotent on the key: a retried call for
// a key that already settled returns the original order and transaction.
type Ledger interface {
	RecordSettlement(key string, bid models.Bid, ask models.Ask, price int64) (models.Order, models.Transaction, error)
}

// DefaultMaxAttempts bounds settlement retries against transient store errors.
const DefaultMaxAttempts = 3

// Recorder turns a matched (bid, ask) pair into an order and a ledger row.
type Recorder struct {
	ledger      Ledger
	maxAttempts int
}

// NewRecorder creates a Recorder. maxAttempts <= 0 falls back to the default.
func NewRecorder(ledger Ledger, maxAttempts int) *Recorder {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Recorder{
		ledger:      ledger,
		maxAttempts: maxAttempts,
	}
}

// IdempotencyKey derives the settlement key for a (bid, ask) pair. Exactly
// one settlement may exist per key.
func IdempotencyKey(bidID, askID string) string {
	return bidID + ":" + askID
}

// Settle records the settlement for a matched pair: order (pending_payment),
// transaction, both offers matched, all in one store operation. Transient
// store failures are retried up to maxAttempts; a status conflict means the
// pair can never settle and aborts immediately. On failure both offers are
// left open.
func (r *Recorder) Settle(bid models.Bid, ask models.Ask, price int64) (models.Order, models.Transaction, error) {
	key := IdempotencyKey(bid.OfferID, ask.OfferID)

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		order, txn, err := r.ledger.RecordSettlement(key, bid, ask, price)
		if err == nil {
			return order, txn, nil
		}
		lastErr = err

		if errors.Is(err, exchangeerrors.ErrStatusConflict) || errors.Is(err, exchangeerrors.ErrOfferNotFound) {
			break
		}

		utils.Warn("settlement attempt failed", map[string]any{
			"key":     key,
			"attempt": attempt,
			"error":   err.Error(),
		})
	}

	return models.Order{}, models.Transaction{}, fmt.Errorf("settle %s: %w (last error: %v)", key, exchangeerrors.ErrSettlementFailed, lastErr)
}

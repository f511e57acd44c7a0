package matching

import (
	"fmt"
	"sync"
	"time"

	"sole-exchange/internal/exchangeerrors"
	model "sole-exchange/internal/models"
	"sole-exchange/internal/orderbook"
	"sole-exchange/utils"
)

// OfferStore is the subset of storage the engine needs for offers.
type OfferStore interface {
	CreateBid(bid model.Bid) error
	CreateAsk(ask model.Ask) error
	GetBid(bidID string) (model.Bid, error)
	GetAsk(askID string) (model.Ask, error)
	UpdateBidStatus(bidID string, from, to model.OfferStatus) error
	UpdateAskStatus(askID string, from, to model.OfferStatus) error
}

// Settler records the settlement for a matched pair. Implemented by
// settlement.Recorder.
type Settler interface {
	Settle(bid model.Bid, ask model.Ask, price int64) (model.Order, model.Transaction, error)
}

// Outcome describes what happened to a newly placed offer.
type Outcome string

const (
	// OutcomeSettled means the offer matched immediately and an order exists.
	OutcomeSettled Outcome = "settled"
	// OutcomeResting means the offer is open in the book awaiting a match.
	OutcomeResting Outcome = "resting"
)

// PlaceResult is the explicit result of placing an offer. Order and
// Transaction are set only when Outcome is OutcomeSettled.
type PlaceResult struct {
	Outcome     Outcome
	Order       *model.Order
	Transaction *model.Transaction
}

// BookSummary is a point-in-time view of one market's book.
type BookSummary struct {
	BestBid  *orderbook.Entry
	BestAsk  *orderbook.Entry
	BidDepth int
	AskDepth int
}

// partition is one market's book plus the lock that serializes all writes
// and matches for it. Two concurrent inserts in the same market can never
// both claim the same opposing offer.
type partition struct {
	mu   sync.Mutex
	book *orderbook.Book
}

// Engine routes offers to their market partition and runs the matching rule:
// on insert, peek the best opposing non-expired offer; if bid price covers
// ask price, settle at the resting offer's price. Offers carry quantity one,
// so an insert produces at most one match.
type Engine struct {
	mu         sync.RWMutex // guards partitions map
	partitions map[model.MarketKey]*partition
	store      OfferStore
	settler    Settler
	now        func() time.Time
}

// NewEngine wires the engine to its store and settler.
func NewEngine(store OfferStore, settler Settler) *Engine {
	return &Engine{
		partitions: make(map[model.MarketKey]*partition),
		store:      store,
		settler:    settler,
		now:        time.Now,
	}
}

func (e *Engine) partitionFor(key model.MarketKey) *partition {
	e.mu.RLock()
	p, ok := e.partitions[key]
	e.mu.RUnlock()
	if ok {
		return p
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if p, ok = e.partitions[key]; !ok {
		p = &partition{book: orderbook.NewBook()}
		e.partitions[key] = p
	}
	return p
}

func bookEntry(o model.Offer) orderbook.Entry {
	return orderbook.Entry{
		OfferID:    o.OfferID,
		UserID:     o.UserID,
		Price:      o.Price,
		CreatedAt:  o.CreatedAt,
		ValidUntil: o.ValidUntil,
	}
}

// PlaceBid persists a new bid and either settles it against the best ask or
// rests it in the book. On settlement failure the bid rests, the resting ask
// stays, and the error is surfaced.
func (e *Engine) PlaceBid(bid model.Bid) (PlaceResult, error) {
	p := e.partitionFor(bid.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.CreateBid(bid); err != nil {
		return PlaceResult{}, fmt.Errorf("engine: place bid %s: %w", bid.OfferID, err)
	}

	now := e.now().UTC()
	best, ok := p.book.BestAsk(now)
	if !ok || bid.Price < best.Price {
		p.book.AddBid(bookEntry(bid.Offer))
		return PlaceResult{Outcome: OutcomeResting}, nil
	}

	ask, err := e.store.GetAsk(best.OfferID)
	if err != nil {
		p.book.AddBid(bookEntry(bid.Offer))
		return PlaceResult{Outcome: OutcomeResting}, fmt.Errorf("engine: best ask %s vanished: %w (%v)", best.OfferID, exchangeerrors.ErrSettlementFailed, err)
	}

	// Price-time priority: the resting ask sets the trade price.
	order, txn, err := e.settler.Settle(bid, ask, best.Price)
	if err != nil {
		p.book.AddBid(bookEntry(bid.Offer))
		return PlaceResult{Outcome: OutcomeResting}, fmt.Errorf("engine: place bid %s: %w", bid.OfferID, err)
	}

	p.book.RemoveAsk(best.OfferID)
	utils.Info("bid matched", map[string]any{
		"bid_id":   bid.OfferID,
		"ask_id":   ask.OfferID,
		"order_id": order.OrderID,
		"price":    best.Price,
	})
	return PlaceResult{Outcome: OutcomeSettled, Order: &order, Transaction: &txn}, nil
}

// PlaceAsk mirrors PlaceBid for the sell side: it settles against the best
// bid when that bid's price covers the ask, at the resting bid's price.
func (e *Engine) PlaceAsk(ask model.Ask) (PlaceResult, error) {
	p := e.partitionFor(ask.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.CreateAsk(ask); err != nil {
		return PlaceResult{}, fmt.Errorf("engine: place ask %s: %w", ask.OfferID, err)
	}

	now := e.now().UTC()
	best, ok := p.book.BestBid(now)
	if !ok || best.Price < ask.Price {
		p.book.AddAsk(bookEntry(ask.Offer))
		return PlaceResult{Outcome: OutcomeResting}, nil
	}

	bid, err := e.store.GetBid(best.OfferID)
	if err != nil {
		p.book.AddAsk(bookEntry(ask.Offer))
		return PlaceResult{Outcome: OutcomeResting}, fmt.Errorf("engine: best bid %s vanished: %w (%v)", best.OfferID, exchangeerrors.ErrSettlementFailed, err)
	}

	order, txn, err := e.settler.Settle(bid, ask, best.Price)
	if err != nil {
		p.book.AddAsk(bookEntry(ask.Offer))
		return PlaceResult{Outcome: OutcomeResting}, fmt.Errorf("engine: place ask %s: %w", ask.OfferID, err)
	}

	p.book.RemoveBid(best.OfferID)
	utils.Info("ask matched", map[string]any{
		"ask_id":   ask.OfferID,
		"bid_id":   bid.OfferID,
		"order_id": order.OrderID,
		"price":    best.Price,
	})
	return PlaceResult{Outcome: OutcomeSettled, Order: &order, Transaction: &txn}, nil
}

// CancelBid closes an open bid and removes it from its book.
func (e *Engine) CancelBid(bid model.Bid) error {
	p := e.partitionFor(bid.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.UpdateBidStatus(bid.OfferID, model.OfferOpen, model.OfferCancelled); err != nil {
		return fmt.Errorf("engine: cancel bid %s: %w", bid.OfferID, err)
	}
	p.book.RemoveBid(bid.OfferID)
	return nil
}

// CancelAsk closes an open ask and removes it from its book.
func (e *Engine) CancelAsk(ask model.Ask) error {
	p := e.partitionFor(ask.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.UpdateAskStatus(ask.OfferID, model.OfferOpen, model.OfferCancelled); err != nil {
		return fmt.Errorf("engine: cancel ask %s: %w", ask.OfferID, err)
	}
	p.book.RemoveAsk(ask.OfferID)
	return nil
}

// ExpireBid transitions an open bid to expired and drops it from the book.
// A CAS failure means the matcher or a cancel won the race; the caller skips.
func (e *Engine) ExpireBid(bid model.Bid) error {
	p := e.partitionFor(bid.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.UpdateBidStatus(bid.OfferID, model.OfferOpen, model.OfferExpired); err != nil {
		return fmt.Errorf("engine: expire bid %s: %w", bid.OfferID, err)
	}
	p.book.RemoveBid(bid.OfferID)
	return nil
}

// ExpireAsk mirrors ExpireBid for the sell side.
func (e *Engine) ExpireAsk(ask model.Ask) error {
	p := e.partitionFor(ask.Market())
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := e.store.UpdateAskStatus(ask.OfferID, model.OfferOpen, model.OfferExpired); err != nil {
		return fmt.Errorf("engine: expire ask %s: %w", ask.OfferID, err)
	}
	p.book.RemoveAsk(ask.OfferID)
	return nil
}

// Summary returns the current best bid/ask and depth for a market.
func (e *Engine) Summary(key model.MarketKey) BookSummary {
	p := e.partitionFor(key)
	p.mu.Lock()
	defer p.mu.Unlock()

	now := e.now().UTC()
	var summary BookSummary
	if best, ok := p.book.BestBid(now); ok {
		summary.BestBid = &best
	}
	if best, ok := p.book.BestAsk(now); ok {
		summary.BestAsk = &best
	}
	summary.BidDepth, summary.AskDepth = p.book.Depth(now)
	return summary
}

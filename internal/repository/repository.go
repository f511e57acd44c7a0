package repository

import (
	"fmt"
	"sync"
	"time"

	"sole-exchange/internal/exchangeerrors"
	model "sole-exchange/internal/models"
	"sole-exchange/utils"
)

// MarketDB defines the storage interface for the marketplace core
type MarketDB interface {
	// catalog
	ValidateMarket(productID, sizeVariantID string) error
	GetProduct(productID string) (model.Product, error)

	// offers
	CreateBid(bid model.Bid) error
	CreateAsk(ask model.Ask) error
	GetBid(bidID string) (model.Bid, error)
	GetAsk(askID string) (model.Ask, error)
	UpdateBidStatus(bidID string, from, to model.OfferStatus) error
	UpdateAskStatus(askID string, from, to model.OfferStatus) error
	ListBidsByUser(userID string) ([]model.Bid, error)
	ListAsksByUser(userID string) ([]model.Ask, error)
	ListExpiredOpenOffers(now time.Time) ([]model.Bid, []model.Ask, error)

	// settlement
	RecordSettlement(key string, bid model.Bid, ask model.Ask, price int64) (model.Order, model.Transaction, error)

	// orders and ledger
	GetOrder(orderID string) (model.Order, error)
	ListOrdersByUser(userID string) ([]model.Order, error)
	UpdateOrderStatus(orderID string, to model.OrderStatus) error
	GetTransactionByOrder(orderID string) (model.Transaction, error)
}

// settled remembers the outcome of one (bid, ask) settlement so a retried
// call returns the original order and transaction.
type settled struct {
	orderID       string
	transactionID string
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu           sync.RWMutex
	products     map[string]model.Product          // key: productID
	variants     map[string]model.SizeVariant      // key: sizeVariantID
	bids         map[string]model.Bid              // key: bidID
	asks         map[string]model.Ask              // key: askID
	orders       map[string]model.Order            // key: orderID
	transactions map[string]model.Transaction      // key: transactionID
	settlements  map[string]settled                // key: idempotency key (bidID:askID)
	openBidKeys  map[openOfferKey]string           // (user, product, variant) -> open bidID
	openAskKeys  map[openOfferKey]string           // (user, product, variant) -> open askID
}

// openOfferKey enforces one open offer per user, product and size per side
type openOfferKey struct {
	userID        string
	productID     string
	sizeVariantID string
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products:     make(map[string]model.Product),
		variants:     make(map[string]model.SizeVariant),
		bids:         make(map[string]model.Bid),
		asks:         make(map[string]model.Ask),
		orders:       make(map[string]model.Order),
		transactions: make(map[string]model.Transaction),
		settlements:  make(map[string]settled),
		openBidKeys:  make(map[openOfferKey]string),
		openAskKeys:  make(map[openOfferKey]string),
	}
}

// AddProduct seeds a catalog product. Used at startup and in tests.
func (r *MemoryRepo) AddProduct(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ProductID] = p
}

// AddVariant seeds a size variant for a product. Used at startup and in tests.
func (r *MemoryRepo) AddVariant(v model.SizeVariant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[v.SizeVariantID] = v
}

// ValidateMarket checks that the product and size variant exist and belong
// together
func (r *MemoryRepo) ValidateMarket(productID, sizeVariantID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.validateMarketLocked(productID, sizeVariantID)
}

func (r *MemoryRepo) validateMarketLocked(productID, sizeVariantID string) error {
	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("validate market %s/%s: %w", productID, sizeVariantID, exchangeerrors.ErrMarketNotFound)
	}
	v, ok := r.variants[sizeVariantID]
	if !ok || v.ProductID != productID {
		return fmt.Errorf("validate market %s/%s: %w", productID, sizeVariantID, exchangeerrors.ErrMarketNotFound)
	}
	return nil
}

// GetProduct returns a catalog product by ID
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, exchangeerrors.ErrMarketNotFound)
	}
	return p, nil
}

// CreateBid stores a new open bid, enforcing one open bid per
// (user, product, size)
func (r *MemoryRepo) CreateBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validateMarketLocked(bid.ProductID, bid.SizeVariantID); err != nil {
		return err
	}

	key := openOfferKey{userID: bid.UserID, productID: bid.ProductID, sizeVariantID: bid.SizeVariantID}
	if existing, ok := r.openBidKeys[key]; ok {
		return fmt.Errorf("create bid for user %s: open bid %s exists: %w", bid.UserID, existing, exchangeerrors.ErrDuplicateOffer)
	}

	r.bids[bid.OfferID] = bid
	r.openBidKeys[key] = bid.OfferID
	return nil
}

// CreateAsk stores a new open ask, enforcing one open ask per
// (user, product, size)
func (r *MemoryRepo) CreateAsk(ask model.Ask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validateMarketLocked(ask.ProductID, ask.SizeVariantID); err != nil {
		return err
	}

	key := openOfferKey{userID: ask.UserID, productID: ask.ProductID, sizeVariantID: ask.SizeVariantID}
	if existing, ok := r.openAskKeys[key]; ok {
		return fmt.Errorf("create ask for user %s: open ask %s exists: %w", ask.UserID, existing, exchangeerrors.ErrDuplicateOffer)
	}

	r.asks[ask.OfferID] = ask
	r.openAskKeys[key] = ask.OfferID
	return nil
}

// GetBid returns a bid by ID
func (r *MemoryRepo) GetBid(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bid, ok := r.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, exchangeerrors.ErrOfferNotFound)
	}
	return bid, nil
}

// GetAsk returns an ask by ID
func (r *MemoryRepo) GetAsk(askID string) (model.Ask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ask, ok := r.asks[askID]
	if !ok {
		return model.Ask{}, fmt.Errorf("get ask %s: %w", askID, exchangeerrors.ErrOfferNotFound)
	}
	return ask, nil
}

// UpdateBidStatus transitions a bid from one status to another. The
// transition is compare-and-swap: it fails if the bid is not currently in
// the expected status.
func (r *MemoryRepo) UpdateBidStatus(bidID string, from, to model.OfferStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateBidStatusLocked(bidID, from, to)
}

func (r *MemoryRepo) updateBidStatusLocked(bidID string, from, to model.OfferStatus) error {
	bid, ok := r.bids[bidID]
	if !ok {
		return fmt.Errorf("update bid %s: %w", bidID, exchangeerrors.ErrOfferNotFound)
	}
	if bid.Status != from {
		return fmt.Errorf("update bid %s: status is %s, expected %s: %w", bidID, bid.Status, from, exchangeerrors.ErrStatusConflict)
	}
	bid.Status = to
	r.bids[bidID] = bid
	if from == model.OfferOpen {
		delete(r.openBidKeys, openOfferKey{userID: bid.UserID, productID: bid.ProductID, sizeVariantID: bid.SizeVariantID})
	}
	return nil
}

// UpdateAskStatus transitions an ask from one status to another, CAS-style.
func (r *MemoryRepo) UpdateAskStatus(askID string, from, to model.OfferStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updateAskStatusLocked(askID, from, to)
}

func (r *MemoryRepo) updateAskStatusLocked(askID string, from, to model.OfferStatus) error {
	ask, ok := r.asks[askID]
	if !ok {
		return fmt.Errorf("update ask %s: %w", askID, exchangeerrors.ErrOfferNotFound)
	}
	if ask.Status != from {
		return fmt.Errorf("update ask %s: status is %s, expected %s: %w", askID, ask.Status, from, exchangeerrors.ErrStatusConflict)
	}
	ask.Status = to
	r.asks[askID] = ask
	if from == model.OfferOpen {
		delete(r.openAskKeys, openOfferKey{userID: ask.UserID, productID: ask.ProductID, sizeVariantID: ask.SizeVariantID})
	}
	return nil
}

// ListBidsByUser returns all bids placed by a user
func (r *MemoryRepo) ListBidsByUser(userID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range r.bids {
		if bid.UserID == userID {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}

// ListAsksByUser returns all asks placed by a user
func (r *MemoryRepo) ListAsksByUser(userID string) ([]model.Ask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asks := make([]model.Ask, 0)
	for _, ask := range r.asks {
		if ask.UserID == userID {
			asks = append(asks, ask)
		}
	}
	return asks, nil
}

// ListExpiredOpenOffers returns offers still open whose validUntil has passed
func (r *MemoryRepo) ListExpiredOpenOffers(now time.Time) ([]model.Bid, []model.Ask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, bid := range r.bids {
		if bid.Status == model.OfferOpen && bid.Expired(now) {
			bids = append(bids, bid)
		}
	}
	var asks []model.Ask
	for _, ask := range r.asks {
		if ask.Status == model.OfferOpen && ask.Expired(now) {
			asks = append(asks, ask)
		}
	}
	return bids, asks, nil
}

// RecordSettlement atomically creates the order and transaction for a matched
// (bid, ask) pair and marks both offers matched. The idempotency key makes a
// retried call return the original order and transaction instead of settling
// twice. All sub-steps happen under one lock; a status conflict aborts the
// whole operation with nothing written.
func (r *MemoryRepo) RecordSettlement(key string, bid model.Bid, ask model.Ask, price int64) (model.Order, model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prior, ok := r.settlements[key]; ok {
		return r.orders[prior.orderID], r.transactions[prior.transactionID], nil
	}

	// Verify both sides are still open before writing anything.
	storedBid, ok := r.bids[bid.OfferID]
	if !ok {
		return model.Order{}, model.Transaction{}, fmt.Errorf("settle %s: %w", key, exchangeerrors.ErrOfferNotFound)
	}
	storedAsk, ok := r.asks[ask.OfferID]
	if !ok {
		return model.Order{}, model.Transaction{}, fmt.Errorf("settle %s: %w", key, exchangeerrors.ErrOfferNotFound)
	}
	if storedBid.Status != model.OfferOpen || storedAsk.Status != model.OfferOpen {
		return model.Order{}, model.Transaction{}, fmt.Errorf("settle %s: bid is %s, ask is %s: %w", key, storedBid.Status, storedAsk.Status, exchangeerrors.ErrStatusConflict)
	}

	now := time.Now().UTC()
	order := model.Order{
		OrderID:       utils.GenerateID(),
		BidID:         bid.OfferID,
		AskID:         ask.OfferID,
		ProductID:     bid.ProductID,
		SizeVariantID: bid.SizeVariantID,
		BuyerID:       bid.UserID,
		SellerID:      ask.UserID,
		Price:         price,
		CreatedAt:     now,
		Status:        model.OrderPendingPayment,
	}
	txn := model.Transaction{
		TransactionID: utils.GenerateID(),
		BidID:         bid.OfferID,
		AskID:         ask.OfferID,
		OrderID:       order.OrderID,
		Price:         price,
		RecordedAt:    now,
	}

	if err := r.updateBidStatusLocked(bid.OfferID, model.OfferOpen, model.OfferMatched); err != nil {
		return model.Order{}, model.Transaction{}, err
	}
	if err := r.updateAskStatusLocked(ask.OfferID, model.OfferOpen, model.OfferMatched); err != nil {
		// Roll the bid back so both sides stay open on failure.
		_ = r.updateBidStatusLocked(bid.OfferID, model.OfferMatched, model.OfferOpen)
		return model.Order{}, model.Transaction{}, err
	}

	r.orders[order.OrderID] = order
	r.transactions[txn.TransactionID] = txn
	r.settlements[key] = settled{orderID: order.OrderID, transactionID: txn.TransactionID}
	return order, txn, nil
}

// GetOrder returns an order by ID
func (r *MemoryRepo) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, exchangeerrors.ErrOrderNotFound)
	}
	return order, nil
}

// ListOrdersByUser returns all orders where the user is buyer or seller
func (r *MemoryRepo) ListOrdersByUser(userID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, order := range r.orders {
		if order.BuyerID == userID || order.SellerID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// UpdateOrderStatus applies a lifecycle transition, rejecting illegal ones
func (r *MemoryRepo) UpdateOrderStatus(orderID string, to model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("update order %s: %w", orderID, exchangeerrors.ErrOrderNotFound)
	}
	if !model.CanTransition(order.Status, to) {
		return fmt.Errorf("update order %s: %s -> %s: %w", orderID, order.Status, to, exchangeerrors.ErrStatusConflict)
	}
	order.Status = to
	r.orders[orderID] = order
	return nil
}

// GetTransactionByOrder returns the ledger row for an order
func (r *MemoryRepo) GetTransactionByOrder(orderID string) (model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, txn := range r.transactions {
		if txn.OrderID == orderID {
			return txn, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("get transaction for order %s: %w", orderID, exchangeerrors.ErrOrderNotFound)
}

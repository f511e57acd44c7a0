package exchange

import (
	"fmt"
	"time"

	"sole-exchange/internal/exchangeerrors"
	"sole-exchange/internal/matching"
	"sole-exchange/internal/models"
	"sole-exchange/internal/repository"
	"sole-exchange/utils"
)

// DefaultOfferTTL is how long an offer stays open when the caller does not
// pick a duration.
const DefaultOfferTTL = 30 * 24 * time.Hour

// ExchangeService defines the business logic for placing, cancelling and
// querying offers and orders
type ExchangeService struct {
	repo   repository.MarketDB
	engine *matching.Engine
}

// NewExchangeService creates a new ExchangeService instance
func NewExchangeService(repo repository.MarketDB, engine *matching.Engine) *ExchangeService {
	return &ExchangeService{
		repo:   repo,
		engine: engine,
	}
}

// PlaceBid validates and submits a buyer's bid. The returned result says
// whether the bid settled immediately or rests in the book.
func (s *ExchangeService) PlaceBid(productID, variantID, userID string, price int64, ttl time.Duration) (models.Bid, matching.PlaceResult, error) {
	if err := s.validateOffer(productID, variantID, userID, price); err != nil {
		return models.Bid{}, matching.PlaceResult{}, err
	}
	if ttl <= 0 {
		ttl = DefaultOfferTTL
	}

	now := time.Now().UTC()
	bid := models.Bid{Offer: models.Offer{
		OfferID:       utils.GenerateID(),
		ProductID:     productID,
		SizeVariantID: variantID,
		UserID:        userID,
		Price:         price,
		CreatedAt:     now,
		ValidUntil:    now.Add(ttl),
		Status:        models.OfferOpen,
	}}

	result, err := s.engine.PlaceBid(bid)
	if err != nil {
		return models.Bid{}, result, fmt.Errorf("service: failed to place bid for user %s: %w", userID, err)
	}
	if result.Outcome == matching.OutcomeSettled {
		bid.Status = models.OfferMatched
	}
	return bid, result, nil
}

// PlaceAsk validates and submits a seller's ask, including the physical item
// details.
func (s *ExchangeService) PlaceAsk(productID, variantID, userID string, price int64, ttl time.Duration, condition models.Condition, packaging models.Packaging) (models.Ask, matching.PlaceResult, error) {
	if err := s.validateOffer(productID, variantID, userID, price); err != nil {
		return models.Ask{}, matching.PlaceResult{}, err
	}
	if !validCondition(condition) {
		return models.Ask{}, matching.PlaceResult{}, fmt.Errorf("service: %w - unknown condition %q", exchangeerrors.ErrInvalidOffer, condition)
	}
	if !validPackaging(packaging) {
		return models.Ask{}, matching.PlaceResult{}, fmt.Errorf("service: %w - unknown packaging %q", exchangeerrors.ErrInvalidOffer, packaging)
	}
	if ttl <= 0 {
		ttl = DefaultOfferTTL
	}

	now := time.Now().UTC()
	ask := models.Ask{
		Offer: models.Offer{
			OfferID:       utils.GenerateID(),
			ProductID:     productID,
			SizeVariantID: variantID,
			UserID:        userID,
			Price:         price,
			CreatedAt:     now,
			ValidUntil:    now.Add(ttl),
			Status:        models.OfferOpen,
		},
		Condition: condition,
		Packaging: packaging,
	}

	result, err := s.engine.PlaceAsk(ask)
	if err != nil {
		return models.Ask{}, result, fmt.Errorf("service: failed to place ask for user %s: %w", userID, err)
	}
	if result.Outcome == matching.OutcomeSettled {
		ask.Status = models.OfferMatched
	}
	return ask, result, nil
}

// validateOffer checks input validity shared by both sides
func (s *ExchangeService) validateOffer(productID, variantID, userID string, price int64) error {
	if productID == "" || variantID == "" || userID == "" {
		return fmt.Errorf("service: %w - missing product, variant or user ID", exchangeerrors.ErrInvalidOffer)
	}
	if price <= 0 {
		return fmt.Errorf("service: %w - non-positive price", exchangeerrors.ErrInvalidOffer)
	}
	if err := s.repo.ValidateMarket(productID, variantID); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	return nil
}

// CancelBid closes an open bid owned by the requesting user.
func (s *ExchangeService) CancelBid(bidID, userID string) error {
	bid, err := s.repo.GetBid(bidID)
	if err != nil {
		return fmt.Errorf("service: cancel bid %s: %w", bidID, err)
	}
	if bid.UserID != userID {
		return fmt.Errorf("service: cancel bid %s: not owned by %s: %w", bidID, userID, exchangeerrors.ErrOfferNotFound)
	}
	if err := s.engine.CancelBid(bid); err != nil {
		return fmt.Errorf("service: cancel bid %s: %w", bidID, err)
	}
	return nil
}

// CancelAsk closes an open ask owned by the requesting user.
func (s *ExchangeService) CancelAsk(askID, userID string) error {
	ask, err := s.repo.GetAsk(askID)
	if err != nil {
		return fmt.Errorf("service: cancel ask %s: %w", askID, err)
	}
	if ask.UserID != userID {
		return fmt.Errorf("service: cancel ask %s: not owned by %s: %w", askID, userID, exchangeerrors.ErrOfferNotFound)
	}
	if err := s.engine.CancelAsk(ask); err != nil {
		return fmt.Errorf("service: cancel ask %s: %w", askID, err)
	}
	return nil
}

// GetBookSummary returns the best bid/ask and depth for a market.
func (s *ExchangeService) GetBookSummary(productID, variantID string) (matching.BookSummary, error) {
	if err := s.repo.ValidateMarket(productID, variantID); err != nil {
		return matching.BookSummary{}, fmt.Errorf("service: %w", err)
	}
	return s.engine.Summary(models.MarketKey{ProductID: productID, SizeVariantID: variantID}), nil
}

// GetBidsByUser returns all bids a user has placed
func (s *ExchangeService) GetBidsByUser(userID string) ([]models.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrInvalidOffer)
	}
	bids, err := s.repo.ListBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for user %s: %w", userID, err)
	}
	return bids, nil
}

// GetAsksByUser returns all asks a user has placed
func (s *ExchangeService) GetAsksByUser(userID string) ([]models.Ask, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrInvalidOffer)
	}
	asks, err := s.repo.ListAsksByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get asks for user %s: %w", userID, err)
	}
	return asks, nil
}

// GetOrdersByUser returns all orders where the user is buyer or seller
func (s *ExchangeService) GetOrdersByUser(userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", exchangeerrors.ErrInvalidOffer)
	}
	orders, err := s.repo.ListOrdersByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// GetOrder returns a single order by ID
func (s *ExchangeService) GetOrder(orderID string) (models.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("service: failed to get order %s: %w", orderID, err)
	}
	return order, nil
}

// GetOrderTransaction returns the ledger row behind an order
func (s *ExchangeService) GetOrderTransaction(orderID string) (models.Transaction, error) {
	txn, err := s.repo.GetTransactionByOrder(orderID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("service: failed to get transaction for order %s: %w", orderID, err)
	}
	return txn, nil
}

// UpdateOrderStatus applies an order lifecycle transition.
func (s *ExchangeService) UpdateOrderStatus(orderID string, to models.OrderStatus) error {
	switch to {
	case models.OrderPaid, models.OrderShipped, models.OrderCompleted, models.OrderCancelled:
	default:
		return fmt.Errorf("service: %w - unknown order status %q", exchangeerrors.ErrInvalidOffer, to)
	}
	if err := s.repo.UpdateOrderStatus(orderID, to); err != nil {
		return fmt.Errorf("service: failed to update order %s: %w", orderID, err)
	}
	return nil
}

func validCondition(c models.Condition) bool {
	switch c {
	case models.ConditionNew, models.ConditionUsed:
		return true
	}
	return false
}

func validPackaging(p models.Packaging) bool {
	switch p {
	case models.PackagingOriginalBox, models.PackagingReplacementBox, models.PackagingNoBox:
		return true
	}
	return false
}

package models

import "time"

// OfferStatus tracks the lifecycle of a bid or ask.
type OfferStatus string

const (
	OfferOpen      OfferStatus = "open"
	OfferMatched   OfferStatus = "matched"
	OfferCancelled OfferStatus = "cancelled"
	OfferExpired   OfferStatus = "expired"
)

// OrderStatus tracks the lifecycle of an order created by a match.
type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderShipped        OrderStatus = "shipped"
	OrderCompleted      OrderStatus = "completed"
	OrderCancelled      OrderStatus = "cancelled"
)

// Condition describes the physical state of the item behind an ask.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Packaging describes the box the item ships in.
type Packaging string

const (
	PackagingOriginalBox    Packaging = "original_box"
	PackagingReplacementBox Packaging = "replacement_box"
	PackagingNoBox          Packaging = "no_box"
)

// Product is a catalog entry (e.g. a sneaker model).
type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
}

// SizeVariant disambiguates a product by size (one SKU per size).
type SizeVariant struct {
	SizeVariantID string `json:"size_variant_id"`
	ProductID     string `json:"product_id"`
	Label         string `json:"label"`
}

// MarketKey identifies one order-book partition.
type MarketKey struct {
	ProductID     string
	SizeVariantID string
}

// Offer carries the fields shared by bids and asks. Prices are integer cents.
type Offer struct {
	OfferID       string      `json:"offer_id"`
	ProductID     string      `json:"product_id"`
	SizeVariantID string      `json:"size_variant_id"`
	UserID        string      `json:"user_id"`
	Price         int64       `json:"price"`
	CreatedAt     time.Time   `json:"created_at"`
	ValidUntil    time.Time   `json:"valid_until"`
	Status        OfferStatus `json:"status"`
}

// Market returns the book partition this offer belongs to.
func (o Offer) Market() MarketKey {
	return MarketKey{ProductID: o.ProductID, SizeVariantID: o.SizeVariantID}
}

// Expired reports whether the offer is past its validUntil at the given time.
func (o Offer) Expired(now time.Time) bool {
	return now.After(o.ValidUntil)
}

// Bid is a buyer's standing offer for a product+size at a price.
type Bid struct {
	Offer
}

// Ask is a seller's standing offer, tied to a physical item.
type Ask struct {
	Offer
	Condition Condition `json:"condition"`
	Packaging Packaging `json:"packaging"`
}

// Order is created when a bid and an ask match. Price and parties are
// immutable after creation; only Status changes.
type Order struct {
	OrderID       string      `json:"order_id"`
	BidID         string      `json:"bid_id"`
	AskID         string      `json:"ask_id"`
	ProductID     string      `json:"product_id"`
	SizeVariantID string      `json:"size_variant_id"`
	BuyerID       string      `json:"buyer_id"`
	SellerID      string      `json:"seller_id"`
	Price         int64       `json:"price"`
	CreatedAt     time.Time   `json:"created_at"`
	Status        OrderStatus `json:"status"`
}

// Transaction is the append-only ledger row for a match. Never mutated.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	BidID         string    `json:"bid_id"`
	AskID         string    `json:"ask_id"`
	OrderID       string    `json:"order_id"`
	Price         int64     `json:"price"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// legalOrderTransitions lists the allowed order status changes.
var legalOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderPendingPayment: {OrderPaid, OrderCancelled},
	OrderPaid:           {OrderShipped},
	OrderShipped:        {OrderCompleted},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range legalOrderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

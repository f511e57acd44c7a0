package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	SizeVariantID string `json:"size_variant_id" binding:"required"`
	UserID        string `json:"user_id" binding:"required"`
	Price         string `json:"price" binding:"required"`
	TTLSeconds    int64  `json:"ttl_seconds" binding:"omitempty,gt=0"`
}

type PlaceAskRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	SizeVariantID string `json:"size_variant_id" binding:"required"`
	UserID        string `json:"user_id" binding:"required"`
	Price         string `json:"price" binding:"required"`
	TTLSeconds    int64  `json:"ttl_seconds" binding:"omitempty,gt=0"`
	Condition     string `json:"condition" binding:"required"`
	Packaging     string `json:"packaging" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OfferResponse struct {
	OfferID       string `json:"offer_id"`
	ProductID     string `json:"product_id"`
	SizeVariantID string `json:"size_variant_id"`
	UserID        string `json:"user_id"`
	Price         string `json:"price"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	ValidUntil    string `json:"valid_until"`
	Condition     string `json:"condition,omitempty"`
	Packaging     string `json:"packaging,omitempty"`
}

type OrderResponse struct {
	OrderID       string `json:"order_id"`
	BidID         string `json:"bid_id"`
	AskID         string `json:"ask_id"`
	ProductID     string `json:"product_id"`
	SizeVariantID string `json:"size_variant_id"`
	BuyerID       string `json:"buyer_id"`
	SellerID      string `json:"seller_id"`
	Price         string `json:"price"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type TransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	BidID         string `json:"bid_id"`
	AskID         string `json:"ask_id"`
	OrderID       string `json:"order_id"`
	Price         string `json:"price"`
	RecordedAt    string `json:"recorded_at"`
}

// PlaceOfferResponse reports what happened to a newly placed offer. Order
// and Transaction are present only when the offer settled immediately.
type PlaceOfferResponse struct {
	Outcome     string               `json:"outcome"`
	Offer       OfferResponse        `json:"offer"`
	Order       *OrderResponse       `json:"order,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

type BookLevelResponse struct {
	OfferID    string `json:"offer_id"`
	Price      string `json:"price"`
	CreatedAt  string `json:"created_at"`
	ValidUntil string `json:"valid_until"`
}

type BookSummaryResponse struct {
	ProductID     string             `json:"product_id"`
	SizeVariantID string             `json:"size_variant_id"`
	BestBid       *BookLevelResponse `json:"best_bid"`
	BestAsk       *BookLevelResponse `json:"best_ask"`
	BidDepth      int                `json:"bid_depth"`
	AskDepth      int                `json:"ask_depth"`
}

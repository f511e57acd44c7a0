package helpers

import (
	"time"

	"sole-exchange/internal/matching"
	model "sole-exchange/internal/models"
	"sole-exchange/internal/orderbook"
)

// BidToResponse converts a bid to its wire form.
func BidToResponse(bid model.Bid) OfferResponse {
	return OfferResponse{
		OfferID:       bid.OfferID,
		ProductID:     bid.ProductID,
		SizeVariantID: bid.SizeVariantID,
		UserID:        bid.UserID,
		Price:         FormatPrice(bid.Price),
		Status:        string(bid.Status),
		CreatedAt:     bid.CreatedAt.UTC().Format(time.RFC3339),
		ValidUntil:    bid.ValidUntil.UTC().Format(time.RFC3339),
	}
}

// AskToResponse converts an ask to its wire form, including item details.
func AskToResponse(ask model.Ask) OfferResponse {
	resp := BidToResponse(model.Bid{Offer: ask.Offer})
	resp.Condition = string(ask.Condition)
	resp.Packaging = string(ask.Packaging)
	return resp
}

// OrderToResponse converts an order to its wire form.
func OrderToResponse(order model.Order) OrderResponse {
	return OrderResponse{
		OrderID:       order.OrderID,
		BidID:         order.BidID,
		AskID:         order.AskID,
		ProductID:     order.ProductID,
		SizeVariantID: order.SizeVariantID,
		BuyerID:       order.BuyerID,
		SellerID:      order.SellerID,
		Price:         FormatPrice(order.Price),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// TransactionToResponse converts a ledger row to its wire form.
func TransactionToResponse(txn model.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		BidID:         txn.BidID,
		AskID:         txn.AskID,
		OrderID:       txn.OrderID,
		Price:         FormatPrice(txn.Price),
		RecordedAt:    txn.RecordedAt.UTC().Format(time.RFC3339),
	}
}

// PlaceResultToResponse builds the placement response for either side.
func PlaceResultToResponse(offer OfferResponse, result matching.PlaceResult) PlaceOfferResponse {
	resp := PlaceOfferResponse{
		Outcome: string(result.Outcome),
		Offer:   offer,
	}
	if result.Order != nil {
		order := OrderToResponse(*result.Order)
		resp.Order = &order
	}
	if result.Transaction != nil {
		txn := TransactionToResponse(*result.Transaction)
		resp.Transaction = &txn
	}
	return resp
}

// SummaryToResponse converts a book summary to its wire form.
func SummaryToResponse(productID, variantID string, summary matching.BookSummary) BookSummaryResponse {
	resp := BookSummaryResponse{
		ProductID:     productID,
		SizeVariantID: variantID,
		BidDepth:      summary.BidDepth,
		AskDepth:      summary.AskDepth,
	}
	resp.BestBid = levelToResponse(summary.BestBid)
	resp.BestAsk = levelToResponse(summary.BestAsk)
	return resp
}

func levelToResponse(e *orderbook.Entry) *BookLevelResponse {
	if e == nil {
		return nil
	}
	return &BookLevelResponse{
		OfferID:    e.OfferID,
		Price:      FormatPrice(e.Price),
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		ValidUntil: e.ValidUntil.UTC().Format(time.RFC3339),
	}
}

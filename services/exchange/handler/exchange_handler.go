package handler

import (
	"fmt"
	"net/http"
	"time"

	"sole-exchange/internal/matching"
	model "sole-exchange/internal/models"
	"sole-exchange/services/exchange/helpers"
	"sole-exchange/utils"

	"github.com/gin-gonic/gin"
)

type ExchangeServiceInterface interface {
	PlaceBid(productID, variantID, userID string, price int64, ttl time.Duration) (model.Bid, matching.PlaceResult, error)
	PlaceAsk(productID, variantID, userID string, price int64, ttl time.Duration, condition model.Condition, packaging model.Packaging) (model.Ask, matching.PlaceResult, error)
	CancelBid(bidID, userID string) error
	CancelAsk(askID, userID string) error
	GetBookSummary(productID, variantID string) (matching.BookSummary, error)
	GetBidsByUser(userID string) ([]model.Bid, error)
	GetAsksByUser(userID string) ([]model.Ask, error)
	GetOrdersByUser(userID string) ([]model.Order, error)
	GetOrder(orderID string) (model.Order, error)
	GetOrderTransaction(orderID string) (model.Transaction, error)
	UpdateOrderStatus(orderID string, to model.OrderStatus) error
}

type ExchangeHandler struct {
	service ExchangeServiceInterface
}

func NewExchangeHandler(service ExchangeServiceInterface) *ExchangeHandler {
	return &ExchangeHandler{service: service}
}

// PlaceBidHandler handles POST /bids
func (h *ExchangeHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	price, err := helpers.ParsePrice(req.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid price")
		utils.Warn("PlaceBidHandler: invalid price", map[string]any{"price": req.Price, "error": err.Error()})
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	bid, result, err := h.service.PlaceBid(req.ProductID, req.SizeVariantID, req.UserID, price, ttl)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": req.ProductID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceResultToResponse(helpers.BidToResponse(bid), result)
	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.OfferID,
		"product_id": bid.ProductID,
		"user_id":    bid.UserID,
		"outcome":    string(result.Outcome),
	})
}

// PlaceAskHandler handles POST /asks
func (h *ExchangeHandler) PlaceAskHandler(c *gin.Context) {
	var req helpers.PlaceAskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceAskHandler", err)
		return
	}

	price, err := helpers.ParsePrice(req.Price)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid price")
		utils.Warn("PlaceAskHandler: invalid price", map[string]any{"price": req.Price, "error": err.Error()})
		return
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	ask, result, err := h.service.PlaceAsk(req.ProductID, req.SizeVariantID, req.UserID, price, ttl,
		model.Condition(req.Condition), model.Packaging(req.Packaging))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceAskHandler: failed to place ask", map[string]any{
			"handler":    "PlaceAskHandler",
			"product_id": req.ProductID,
			"user_id":    req.UserID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceResultToResponse(helpers.AskToResponse(ask), result)
	utils.JSONResponse(c, http.StatusCreated, resp, "ask placed successfully")
	helpers.LogSuccess("PlaceAskHandler", "ask placed successfully", map[string]any{
		"ask_id":     ask.OfferID,
		"product_id": ask.ProductID,
		"user_id":    ask.UserID,
		"outcome":    string(result.Outcome),
	})
}

// CancelBidHandler handles DELETE /bids/:bid_id
func (h *ExchangeHandler) CancelBidHandler(c *gin.Context) {
	bidID := c.Param("bid_id")
	userID := c.Query("user_id")

	if err := h.service.CancelBid(bidID, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelBidHandler: cancel failed", map[string]any{"bid_id": bidID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"bid_id": bidID}, "bid cancelled successfully")
	helpers.LogSuccess("CancelBidHandler", "bid cancelled successfully", map[string]any{"bid_id": bidID, "user_id": userID})
}

// CancelAskHandler handles DELETE /asks/:ask_id
func (h *ExchangeHandler) CancelAskHandler(c *gin.Context) {
	askID := c.Param("ask_id")
	userID := c.Query("user_id")

	if err := h.service.CancelAsk(askID, userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("CancelAskHandler: cancel failed", map[string]any{"ask_id": askID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"ask_id": askID}, "ask cancelled successfully")
	helpers.LogSuccess("CancelAskHandler", "ask cancelled successfully", map[string]any{"ask_id": askID, "user_id": userID})
}

// GetBookHandler handles GET /markets/:product_id/:variant_id/book
func (h *ExchangeHandler) GetBookHandler(c *gin.Context) {
	productID := c.Param("product_id")
	variantID := c.Param("variant_id")

	summary, err := h.service.GetBookSummary(productID, variantID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBookHandler: error retrieving book", map[string]any{"product_id": productID, "variant_id": variantID, "error": err.Error()})
		return
	}

	resp := helpers.SummaryToResponse(productID, variantID, summary)
	utils.JSONResponse(c, http.StatusOK, resp, "book retrieved successfully")
}

// GetBidsByUserHandler handles GET /users/:user_id/bids
func (h *ExchangeHandler) GetBidsByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	bids, err := h.service.GetBidsByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByUserHandler: error retrieving bids", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.OfferResponse, 0, len(bids))
	for _, bid := range bids {
		resp = append(resp, helpers.BidToResponse(bid))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByUserHandler", "bids retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// GetAsksByUserHandler handles GET /users/:user_id/asks
func (h *ExchangeHandler) GetAsksByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	asks, err := h.service.GetAsksByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAsksByUserHandler: error retrieving asks", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.OfferResponse, 0, len(asks))
	for _, ask := range asks {
		resp = append(resp, helpers.AskToResponse(ask))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "asks retrieved successfully")
	helpers.LogSuccess("GetAsksByUserHandler", "asks retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(resp),
	})
}

// GetOrdersByUserHandler handles GET /users/:user_id/orders
func (h *ExchangeHandler) GetOrdersByUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	orders, err := h.service.GetOrdersByUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOrdersByUserHandler: error retrieving orders", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	resp := make([]helpers.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, helpers.OrderToResponse(order))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "orders retrieved successfully")
}

// GetOrderHandler handles GET /orders/:order_id
func (h *ExchangeHandler) GetOrderHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.service.GetOrder(orderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOrderHandler: error retrieving order", map[string]any{"order_id": orderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.OrderToResponse(order), "order retrieved successfully")
}

// GetOrderTransactionHandler handles GET /orders/:order_id/transaction
func (h *ExchangeHandler) GetOrderTransactionHandler(c *gin.Context) {
	orderID := c.Param("order_id")
	txn, err := h.service.GetOrderTransaction(orderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOrderTransactionHandler: error retrieving transaction", map[string]any{"order_id": orderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.TransactionToResponse(txn), "transaction retrieved successfully")
}

// UpdateOrderStatusHandler handles PATCH /orders/:order_id/status
func (h *ExchangeHandler) UpdateOrderStatusHandler(c *gin.Context) {
	orderID := c.Param("order_id")

	var req helpers.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateOrderStatusHandler", err)
		return
	}

	if err := h.service.UpdateOrderStatus(orderID, model.OrderStatus(req.Status)); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateOrderStatusHandler: update failed", map[string]any{"order_id": orderID, "status": req.Status, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"order_id": orderID, "status": req.Status}, "order status updated successfully")
	helpers.LogSuccess("UpdateOrderStatusHandler", "order status updated successfully", map[string]any{
		"order_id": orderID,
		"status":   req.Status,
	})
}

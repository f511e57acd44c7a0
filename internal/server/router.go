package server

import (
	exchange "sole-exchange/internal/exchangeService"
	handler "sole-exchange/services/exchange/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(exchangeService *exchange.ExchangeService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	exchangeHandler := handler.NewExchangeHandler(exchangeService)

	bids := router.Group("/bids")
	{
		bids.POST("", exchangeHandler.PlaceBidHandler)
		bids.DELETE("/:bid_id", exchangeHandler.CancelBidHandler)
	}

	asks := router.Group("/asks")
	{
		asks.POST("", exchangeHandler.PlaceAskHandler)
		asks.DELETE("/:ask_id", exchangeHandler.CancelAskHandler)
	}

	markets := router.Group("/markets")
	{
		markets.GET("/:product_id/:variant_id/book", exchangeHandler.GetBookHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/bids", exchangeHandler.GetBidsByUserHandler)
		users.GET("/:user_id/asks", exchangeHandler.GetAsksByUserHandler)
		users.GET("/:user_id/orders", exchangeHandler.GetOrdersByUserHandler)
	}

	orders := router.Group("/orders")
	{
		orders.GET("/:order_id", exchangeHandler.GetOrderHandler)
		orders.GET("/:order_id/transaction", exchangeHandler.GetOrderTransactionHandler)
		orders.PATCH("/:order_id/status", exchangeHandler.UpdateOrderStatusHandler)
	}

	return router
}

package routes

import (
	"net/http"

	"ordem_servico/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathOrders   = "/orders"
	PathClients  = "/clients"
	PathPayments = "/payments"
	PathSync     = "/sync"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h Handlers) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Orders.ListOrders)
		orders.POST("/refresh", h.Orders.RefreshOrders)
		orders.GET("/export", h.Orders.ExportOrders)
		orders.PATCH("/:id/status", h.Orders.ChangeStatus)
		orders.DELETE("/:number", h.Orders.DeleteOrder)

		orders.GET("/draft", h.Forms.Draft)
		orders.GET("/:id/form", h.Forms.EditForm)
		orders.POST("/validate", h.Forms.Validate)
		orders.POST("/bills/remove", h.Forms.RemoveBill)
		orders.POST("", h.Forms.Create)
		orders.PUT("/:id", h.Forms.Update)
	}

	rg.GET(PathSync+"/:number", h.Orders.SyncHistory)
	rg.GET(PathClients, h.Clients.SearchClients)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.OrderPaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:number", paymentHandler.CreatePaymentByOrderNumber)
		payments.GET("/:number", paymentHandler.GetPaymentByOrderNumber)
	}
}

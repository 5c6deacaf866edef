package routes

import (
	"net/http"

	"campuspay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayables = "/payables"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, payableHandler *handlers.PayableHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	payables := rg.Group(PathPayables)
	{
		payables.POST("", payableHandler.CreatePayable)
		payables.GET("/:payable_id", payableHandler.GetPayable)
		payables.POST("/:payable_id/reconcile", reconciliationHandler.Reconcile)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Push-path trigger; same engine and idempotency guard as polling.
		webhooks.POST("/payments", reconciliationHandler.HandleWebhook)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

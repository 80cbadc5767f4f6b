package routes

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/prompt", paymentHandler.SendPrompt)
		payments.POST("", paymentHandler.RecordPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:payment_id", paymentHandler.GetPaymentByID)
		payments.POST("/:payment_id/reconcile", paymentHandler.ReconcilePayment)
	}
}

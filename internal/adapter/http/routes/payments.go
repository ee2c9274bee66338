package routes

import (
	"service_documents/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.QuotePaymentHandler) {
	rg.POST(PathServices+"/quotes/:number/payments", h.CreatePayment)
	rg.GET(PathServices+"/quotes/:number/payments", h.GetLatestPayment)
	rg.GET(PathPayments+"/:payment_id", h.GetPayment)
}

package routes

import (
	"service_documents/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices  = "/services/:id"
	PathDocuments = "/documents"
)

func addDocumentRoutes(rg *gin.RouterGroup, h *handlers.DocumentHandler, maxUploadBytes int64) {
	rg.GET(PathDocuments+"/quotes", h.ListQuotes)

	services := rg.Group(PathServices)
	{
		services.GET("/documents", h.GetDocuments)
		services.GET("/history", h.GetHistory)
		services.GET("/convert/:kind/:number", h.PreviewConversion)

		writes := services.Group("", limitBody(maxUploadBytes))
		writes.POST("/quote", h.CreateQuote)
		writes.POST("/work-order", h.CreateWorkOrder)
		writes.POST("/report", h.CreateReport)
		writes.PUT("/documents/:number", h.UpdateDocument)

		services.PATCH("/documents/:number/accept", h.AcceptDocument)
		services.PATCH("/documents/:number/reject", h.RejectDocument)
		services.DELETE("/documents/:number", h.DeleteDocument)
	}
}

package response

import (
	"service_documents/internal/domain/converter"
	"service_documents/internal/domain/entities"
)

type DocumentsResponse struct {
	Success   bool                `json:"success"`
	Documents []entities.Document `json:"documents"`
}

type QuotationsResponse struct {
	Success    bool                    `json:"success"`
	Quotations []entities.QuoteListing `json:"quotations"`
}

type HistoryResponse struct {
	Success bool                    `json:"success"`
	History []entities.HistoryEvent `json:"history"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ConversionResponse struct {
	Success  bool              `json:"success"`
	Draft    converter.Draft   `json:"draft"`
	Original entities.Document `json:"original"`
}

// DocumentKey is the envelope key a freshly created document is returned under.
func DocumentKey(kind entities.DocumentKind) string {
	switch kind {
	case entities.DocumentKindCotizacion:
		return "quotation"
	case entities.DocumentKindOrdenTrabajo:
		return "order"
	case entities.DocumentKindReporte:
		return "report"
	}
	return "document"
}

// DocumentEnvelope renders {success, <key>: doc}.
func DocumentEnvelope(key string, doc entities.Document) map[string]any {
	return map[string]any{"success": true, key: doc}
}

func FromDocuments(docs []entities.Document) DocumentsResponse {
	if docs == nil {
		docs = []entities.Document{}
	}
	return DocumentsResponse{Success: true, Documents: docs}
}

func FromQuoteListings(quotes []entities.QuoteListing) QuotationsResponse {
	if quotes == nil {
		quotes = []entities.QuoteListing{}
	}
	return QuotationsResponse{Success: true, Quotations: quotes}
}

func FromHistory(events []entities.HistoryEvent) HistoryResponse {
	if events == nil {
		events = []entities.HistoryEvent{}
	}
	return HistoryResponse{Success: true, History: events}
}

package interfaces

import (
	"context"
	"service_documents/internal/domain/entities"
)

// IQuotePaymentRepository persists payments collected against quotes.

type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuote(ctx context.Context, serviceID, quoteNumber string) ([]entities.QuotePayment, error)
}

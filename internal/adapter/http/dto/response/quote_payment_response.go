package response

import (
	"time"

	"service_documents/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	QuoteNumber string    `json:"quote_number"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		ServiceID:    p.ServiceID,
		QuoteNumber:  p.QuoteNumber,
		Amount:       p.Amount,
		Currency:     p.Currency,
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}

// LatestPayment returns the most recent payment, or false when there is none.
func LatestPayment(payments []entities.QuotePayment) (entities.QuotePayment, bool) {
	if len(payments) == 0 {
		return entities.QuotePayment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, true
}

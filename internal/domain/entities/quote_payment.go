package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// Only approved payments are persisted today; the other statuses exist so the
// provider outcome can be stored as-is later.

type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// QuotePayment is a payment collected against an accepted cotizacion.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_key-index): quote_key = "<service_id>#<quote_number>"
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original Mercado Pago body for audit.
//   - ProviderPayload is the parsed form, useful when debugging.

type QuotePayment struct {
	ID          string        `json:"id"`
	ServiceID   string        `json:"service_id"`
	QuoteNumber string        `json:"quote_number"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

// QuoteKey identifies a quote across service records.
func QuoteKey(serviceID, quoteNumber string) string {
	return serviceID + "#" + quoteNumber
}

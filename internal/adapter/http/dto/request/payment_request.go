package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrInvalidPaymentBody = errors.New("payment body must be valid json")

// PaymentCreateRequest is the envelope form of a payment request.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas. A body
// without the envelope is treated as the payload itself.

type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// ResolvePaymentPayload returns the Mercado Pago payload carried by body. An empty
// body yields "{}".
func ResolvePaymentPayload(body []byte) (json.RawMessage, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(body) {
		return nil, ErrInvalidPaymentBody
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req PaymentCreateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return nil, ErrInvalidPaymentBody
			}
			wrapped := bytes.TrimSpace(req.MPPayload)
			if len(wrapped) == 0 || string(wrapped) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return json.RawMessage(wrapped), nil
		}
	}
	return json.RawMessage(body), nil
}

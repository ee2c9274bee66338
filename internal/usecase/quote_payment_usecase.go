package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"
)

var (
	ErrQuotePaymentNotFound           = errors.New("quote payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

const eventPaymentRegistered = "pago_registrado"

// PaymentOptions tunes the payment flow per environment.
//
// MockMode skips the gateway and fabricates an approved provider response. The
// sandbox fields only apply when the access token is a TEST- token.
type PaymentOptions struct {
	MockMode           bool
	AccessToken        string
	SandboxPayerEmail  string
	SandboxPayerUserID string
}

// IQuotePaymentUseCase collects payments against accepted cotizaciones.
//
// Requested behavior:
//   - The quote must exist on the service and be aceptado.
//   - The amount charged is always the quote total.
//   - Each approved payment is persisted and logged in the service history.

type IQuotePaymentUseCase interface {
	CreateForQuote(ctx context.Context, serviceID, quoteNumber string, mpPayload json.RawMessage, user string) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListForQuote(ctx context.Context, serviceID, quoteNumber string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo    interfaces.IQuotePaymentRepository
	store   interfaces.IDocumentStore
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
	log     *logger.Logger
	now     func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	store interfaces.IDocumentStore,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	log *logger.Logger,
) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{
		repo:    repo,
		store:   store,
		gateway: gateway,
		opts:    opts,
		log:     log.With("component", "QuotePaymentUseCase"),
		now:     time.Now,
	}
}

func (u *QuotePaymentUseCase) CreateForQuote(ctx context.Context, serviceID, quoteNumber string, mpPayload json.RawMessage, user string) (entities.QuotePayment, error) {
	serviceID = strings.TrimSpace(serviceID)
	quoteNumber = strings.TrimSpace(quoteNumber)
	u.log.Info("create payment start", "service_id", serviceID, "quote_number", quoteNumber, "payload_len", len(mpPayload), "mock", u.opts.MockMode)
	if serviceID == "" {
		return entities.QuotePayment{}, ErrInvalidServiceID
	}
	if quoteNumber == "" {
		return entities.QuotePayment{}, ErrInvalidDocumentNumber
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			u.log.Info("invalid payload", "service_id", serviceID, "quote_number", quoteNumber)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	quote, found, err := u.store.FindDocument(ctx, serviceID, entities.DocumentKindCotizacion, quoteNumber)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if !found {
		return entities.QuotePayment{}, ErrDocumentNotFound
	}
	if quote.Status != entities.DocumentStatusAceptado {
		u.log.Info("quote not accepted", "service_id", serviceID, "quote_number", quoteNumber, "status", quote.Status)
		return entities.QuotePayment{}, ErrQuoteNotAccepted
	}

	var amount float64
	currency := ""
	if quote.Quote != nil {
		amount = quote.Quote.Total
		currency = quote.Quote.Currency
	}

	externalRef := serviceID + "/" + quoteNumber
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.log.Info("missing payment_method_id", "service_id", serviceID, "quote_number", quoteNumber)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.log.Info("missing or invalid payer", "service_id", serviceID, "quote_number", quoteNumber)
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = externalRef
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Cotización %s", quoteNumber)
	}
	// The amount always comes from the stored quote.
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.MockMode {
		providerPaymentID, providerStatus, providerResp, err = mockProviderResponse(reqMap, u.now().UTC())
		if err != nil {
			return entities.QuotePayment{}, err
		}
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			u.log.Error("payment gateway failed", "service_id", serviceID, "quote_number", quoteNumber, "error", err)
			return entities.QuotePayment{}, mapGatewayError(err)
		}
	}
	u.log.Info("payment gateway success", "service_id", serviceID, "quote_number", quoteNumber, "provider_payment_id", providerPaymentID, "provider_status", providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", "provider_payment_id", providerPaymentID, "error", err)
	}

	now := u.now().UTC()
	created, err := u.repo.Create(ctx, entities.QuotePayment{
		ID:                 providerPaymentID,
		ServiceID:          serviceID,
		QuoteNumber:        quoteNumber,
		Amount:             amount,
		Currency:           currency,
		Date:               now,
		Status:             entities.PaymentStatusAprobado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	})
	if err != nil {
		u.log.Error("payment repository create failed", "payment_id", providerPaymentID, "error", err)
		return entities.QuotePayment{}, err
	}

	event := entities.NewHistoryEvent(
		eventPaymentRegistered,
		fmt.Sprintf("Pago %s registrado para la cotización %s", created.ID, quoteNumber),
		actorOrNil(user, nil),
		map[string]any{"number": quoteNumber, "paymentId": created.ID, "amount": amount, "currency": currency},
		now,
	)
	if _, err := u.store.AppendHistoryEvent(ctx, serviceID, event); err != nil {
		// The payment is already persisted; the history entry is not worth failing it.
		u.log.Warn("payment history append failed", "service_id", serviceID, "payment_id", created.ID, "error", err)
	}

	u.log.Info("create payment success", "service_id", serviceID, "quote_number", quoteNumber, "payment_id", created.ID)
	return created, nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListForQuote(ctx context.Context, serviceID, quoteNumber string) ([]entities.QuotePayment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}
	quoteNumber = strings.TrimSpace(quoteNumber)
	if quoteNumber == "" {
		return nil, ErrInvalidDocumentNumber
	}
	return u.repo.ListByQuote(ctx, serviceID, quoteNumber)
}

func mockProviderResponse(req map[string]any, now time.Time) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString()[:8]
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	ts := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = ts
	resp["date_approved"] = ts
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *QuotePaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Either payer.id or payer.email is enough; fill email only when both are missing.
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.SandboxPayerEmail); email != "" {
		payer["email"] = email
	} else if u.sandbox() {
		payer["email"] = "test_user_mx@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email, which
// is what the sandbox accepts.
func (u *QuotePaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.SandboxPayerUserID)
	email := strings.TrimSpace(u.opts.SandboxPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	u.log.Debug("mapped sandbox payer user id to email")
}

package handlers

import (
	"encoding/json"
	"net/http"

	"service_documents/internal/adapter/http/dto/request"
	"service_documents/internal/adapter/http/dto/response"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase"
	"service_documents/pkg"

	"github.com/gin-gonic/gin"
)

// QuotePaymentHandler handles payments collected against accepted cotizaciones.

type QuotePaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
	log      *logger.Logger
}

// NewQuotePaymentHandler builds the handler. In mock mode an unreadable body
// falls back to an empty payload instead of failing the request.
func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool, log *logger.Logger) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode, log: log.With("component", "QuotePaymentHandler")}
}

// CreatePayment godoc
// @Summary      Charge an accepted cotizacion
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        number  path    string  true   "Quote number"
// @Param        X-User  header  string  false  "Acting user"
// @Param        body    body    request.PaymentCreateRequest  false  "Mercado Pago payload, bare or wrapped in mp_payload"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /services/{id}/quotes/{number}/payments [post]
func (h *QuotePaymentHandler) CreatePayment(c *gin.Context) {
	serviceID, number := c.Param("id"), c.Param("number")
	h.log.Info("create start", "service_id", serviceID, "quote_number", number)

	payload, err := h.readPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("invalid payload", "service_id", serviceID, "quote_number", number, "error", err)
			abortWith(c, errInvalidRequest)
			return
		}
		h.log.Warn("payload invalid in mock mode, using empty payload", "service_id", serviceID, "error", err)
		payload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateForQuote(c.Request.Context(), serviceID, number, payload, request.ResolveUser(c.GetHeader(HeaderUser)))
	if err != nil {
		h.log.Warn("create failed", "service_id", serviceID, "quote_number", number, "error", err)
		abortWith(c, mapQuotePaymentError(err))
		return
	}
	h.log.Info("create success", "service_id", serviceID, "quote_number", number, "payment_id", created.ID, "status", created.Status)
	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetLatestPayment godoc
// @Summary      Latest payment of a cotizacion
// @Tags         payments
// @Produce      json
// @Param        id      path  string  true  "Service ID"
// @Param        number  path  string  true  "Quote number"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/quotes/{number}/payments [get]
func (h *QuotePaymentHandler) GetLatestPayment(c *gin.Context) {
	serviceID, number := c.Param("id"), c.Param("number")

	payments, err := h.usecase.ListForQuote(c.Request.Context(), serviceID, number)
	if err != nil {
		h.log.Warn("list failed", "service_id", serviceID, "quote_number", number, "error", err)
		abortWith(c, mapQuotePaymentError(err))
		return
	}
	latest, ok := response.LatestPayment(payments)
	if !ok {
		abortWith(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// GetPayment godoc
// @Summary      Payment by id
// @Tags         payments
// @Produce      json
// @Param        payment_id  path  string  true  "Payment ID"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *QuotePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		abortWith(c, mapQuotePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(p))
}

func (h *QuotePaymentHandler) readPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ResolvePaymentPayload(raw)
}

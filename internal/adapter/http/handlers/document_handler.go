package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"service_documents/internal/adapter/http/dto/request"
	"service_documents/internal/adapter/http/dto/response"
	"service_documents/internal/domain/document"
	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderUser carries the acting user recorded on documents and history events.
const HeaderUser = "X-User"

// DocumentHandler exposes the document lifecycle of a service over HTTP.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
	log     *logger.Logger
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{usecase: uc, log: log.With("component", "DocumentHandler")}
}

// GetDocuments godoc
// @Summary      List the documents of a service
// @Tags         documents
// @Produce      json
// @Param        id    path   string  true   "Service ID"
// @Param        kind  query  string  false  "cotizacion, orden_trabajo or reporte"
// @Success      200  {object}  response.DocumentsResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/documents [get]
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	serviceID := c.Param("id")

	var (
		docs []entities.Document
		err  error
	)
	if raw := c.Query("kind"); raw != "" {
		kind, kindErr := document.ParseKind(raw)
		if kindErr != nil {
			h.fail(c, kindErr)
			return
		}
		docs, err = h.usecase.GetDocumentsByKind(c.Request.Context(), serviceID, kind)
	} else {
		docs, err = h.usecase.GetDocuments(c.Request.Context(), serviceID)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// ListQuotes godoc
// @Summary      List every cotizacion across services, newest first
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.QuotationsResponse
// @Router       /documents/quotes [get]
func (h *DocumentHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListAllQuotes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteListings(quotes))
}

// GetHistory godoc
// @Summary      Service history log
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "Service ID"
// @Success      200  {object}  response.HistoryResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/history [get]
func (h *DocumentHandler) GetHistory(c *gin.Context) {
	events, err := h.usecase.GetHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(events))
}

// CreateQuote godoc
// @Summary      Create a cotizacion
// @Tags         documents
// @Accept       json,mpfd
// @Produce      json
// @Param        id      path      string  true   "Service ID"
// @Param        X-User  header    string  false  "Acting user"
// @Param        data    formData  string  false  "Document JSON (multipart)"
// @Param        pdf     formData  file    false  "PDF (multipart)"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/quote [post]
func (h *DocumentHandler) CreateQuote(c *gin.Context) {
	h.create(c, entities.DocumentKindCotizacion)
}

// CreateWorkOrder godoc
// @Summary      Create an orden_trabajo, optionally from fromQuoteNumber
// @Tags         documents
// @Accept       json,mpfd
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        X-User  header  string  false  "Acting user"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/work-order [post]
func (h *DocumentHandler) CreateWorkOrder(c *gin.Context) {
	h.create(c, entities.DocumentKindOrdenTrabajo)
}

// CreateReport godoc
// @Summary      Create a reporte, optionally from fromWorkOrderNumber
// @Tags         documents
// @Accept       json,mpfd
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        X-User  header  string  false  "Acting user"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/report [post]
func (h *DocumentHandler) CreateReport(c *gin.Context) {
	h.create(c, entities.DocumentKindReporte)
}

func (h *DocumentHandler) create(c *gin.Context, kind entities.DocumentKind) {
	fields, pdf, release, err := readDocumentRequest(c, false)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer release()

	doc, err := h.usecase.CreateDocument(c.Request.Context(), usecase.CreateDocumentCommand{
		ServiceID: c.Param("id"),
		Kind:      kind,
		Fields:    fields,
		PDF:       pdf,
		User:      request.ResolveUser(c.GetHeader(HeaderUser)),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.DocumentEnvelope(response.DocumentKey(kind), doc))
}

// UpdateDocument godoc
// @Summary      Merge a patch into a document
// @Tags         documents
// @Accept       json,mpfd
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        number  path    string  true   "Document number"
// @Param        X-User  header  string  false  "Acting user"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/documents/{number} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	patch, pdf, release, err := readDocumentRequest(c, true)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer release()

	doc, err := h.usecase.UpdateDocument(c.Request.Context(), usecase.UpdateDocumentCommand{
		ServiceID: c.Param("id"),
		Number:    c.Param("number"),
		Patch:     patch,
		PDF:       pdf,
		User:      request.ResolveUser(c.GetHeader(HeaderUser)),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentEnvelope("document", doc))
}

// AcceptDocument godoc
// @Summary      Accept a pendiente document
// @Tags         documents
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        number  path    string  true   "Document number"
// @Param        X-User  header  string  false  "Acting user"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /services/{id}/documents/{number}/accept [patch]
func (h *DocumentHandler) AcceptDocument(c *gin.Context) {
	doc, err := h.usecase.AcceptDocument(c.Request.Context(), c.Param("id"), c.Param("number"), request.ResolveUser(c.GetHeader(HeaderUser)))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentEnvelope("document", doc))
}

// RejectDocument godoc
// @Summary      Reject a pendiente document
// @Tags         documents
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        number  path    string  true   "Document number"
// @Param        X-User  header  string  false  "Acting user"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /services/{id}/documents/{number}/reject [patch]
func (h *DocumentHandler) RejectDocument(c *gin.Context) {
	doc, err := h.usecase.RejectDocument(c.Request.Context(), c.Param("id"), c.Param("number"), request.ResolveUser(c.GetHeader(HeaderUser)))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DocumentEnvelope("document", doc))
}

// DeleteDocument godoc
// @Summary      Delete every document with the given number
// @Tags         documents
// @Produce      json
// @Param        id      path    string  true   "Service ID"
// @Param        number  path    string  true   "Document number"
// @Param        X-User  header  string  false  "Acting user"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/documents/{number} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	number := c.Param("number")
	if err := h.usecase.DeleteDocument(c.Request.Context(), c.Param("id"), number, request.ResolveUser(c.GetHeader(HeaderUser))); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Success: true, Message: fmt.Sprintf("Documento %s eliminado", number)})
}

// PreviewConversion godoc
// @Summary      Draft of the next stage for a document
// @Tags         documents
// @Produce      json
// @Param        id      path  string  true  "Service ID"
// @Param        kind    path  string  true  "Kind of the source document"
// @Param        number  path  string  true  "Document number"
// @Success      200  {object}  response.ConversionResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id}/convert/{kind}/{number} [get]
func (h *DocumentHandler) PreviewConversion(c *gin.Context) {
	kind, err := document.ParseKind(c.Param("kind"))
	if err != nil {
		h.fail(c, err)
		return
	}
	preview, err := h.usecase.PreviewConversion(c.Request.Context(), c.Param("id"), kind, c.Param("number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.ConversionResponse{Success: true, Draft: preview.Draft, Original: preview.Original})
}

func (h *DocumentHandler) fail(c *gin.Context, err error) {
	appErr := mapDocumentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "service_id", c.Param("id"), "error", err)
	} else {
		h.log.Debug("request rejected", "path", c.FullPath(), "code", appErr.Code, "error", err)
	}
	abortWith(c, appErr)
}

// readDocumentRequest reads a JSON body, or a multipart body with a `data` JSON
// field and an optional `pdf` file. release closes the uploaded file.
// allowEmpty lets a PDF-only update through with an empty patch.
func readDocumentRequest(c *gin.Context, allowEmpty bool) (entities.Fields, *usecase.FileUpload, func(), error) {
	release := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		raw, err := c.GetRawData()
		if err != nil {
			return nil, nil, release, request.ErrInvalidDocumentBody
		}
		fields, err := decodeFields(string(raw), allowEmpty)
		return fields, nil, release, err
	}

	fields, err := decodeFields(c.PostForm(request.FormFieldData), allowEmpty)
	if err != nil {
		return nil, nil, release, err
	}
	header, err := c.FormFile(request.FormFieldPDF)
	if errors.Is(err, http.ErrMissingFile) {
		return fields, nil, release, nil
	}
	if err != nil {
		return nil, nil, release, request.ErrInvalidDocumentBody
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, release, err
	}
	return fields, &usecase.FileUpload{Filename: header.Filename, Content: file}, func() { _ = file.Close() }, nil
}

func decodeFields(raw string, allowEmpty bool) (entities.Fields, error) {
	if allowEmpty && strings.TrimSpace(raw) == "" {
		return entities.Fields{}, nil
	}
	return request.DecodeDocumentFields(raw)
}

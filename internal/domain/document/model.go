// Package document defines how service documents are built and validated.
//
// Nothing here performs I/O. The use case layer validates a document before it
// reaches the store; the store itself never validates.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"service_documents/internal/domain/entities"
)

const (
	DefaultCurrency     = "MXN"
	DefaultValidityDays = 30

	dateLayout = "2006-01-02"
)

var (
	ErrValidation          = errors.New("document validation failed")
	ErrUnknownDocumentKind = errors.New("unknown document kind")
)

// ValidationError names the requirement a document failed.
type ValidationError struct {
	Kind   entities.DocumentKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ParseKind resolves a kind from its stored value or one of the route aliases.
func ParseKind(raw string) (entities.DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cotizacion", "quote", "quotation":
		return entities.DocumentKindCotizacion, nil
	case "orden_trabajo", "orden-trabajo", "work-order", "work_order", "workorder", "order":
		return entities.DocumentKindOrdenTrabajo, nil
	case "reporte", "report", "completion-report":
		return entities.DocumentKindReporte, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocumentKind, raw)
}

// DefaultStatus is the status a freshly created document of kind starts in.
func DefaultStatus(kind entities.DocumentKind) entities.DocumentStatus {
	if kind == entities.DocumentKindReporte {
		return entities.DocumentStatusCompletado
	}
	return entities.DocumentStatusPendiente
}

// New builds a document of kind from caller fields, filling every absent field
// with its default. Null values count as absent. Missing optional fields never
// fail; fields of the wrong JSON type do.
func New(kind entities.DocumentKind, fields entities.Fields, now time.Time) (entities.Document, error) {
	if !kind.Valid() {
		return entities.Document{}, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}
	now = now.UTC()

	base, err := defaults(kind, now).Fields()
	if err != nil {
		return entities.Document{}, err
	}
	merged := base.Overlay(withoutNulls(fields).Without("kind"))

	raw, err := json.Marshal(merged)
	if err != nil {
		return entities.Document{}, err
	}
	var doc entities.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entities.Document{}, &ValidationError{Kind: kind, Reason: "malformed fields: " + err.Error()}
	}

	normalize(&doc, now)
	return doc, nil
}

func defaults(kind entities.DocumentKind, now time.Time) entities.Document {
	doc := entities.Document{
		Kind:      kind,
		Date:      now.Format(dateLayout),
		Status:    DefaultStatus(kind),
		CreatedAt: now,
	}
	switch kind {
	case entities.DocumentKindCotizacion:
		doc.Quote = &entities.QuoteDetails{
			Products:     []entities.Product{},
			Currency:     DefaultCurrency,
			ValidityDays: DefaultValidityDays,
		}
	case entities.DocumentKindOrdenTrabajo:
		doc.WorkOrder = &entities.WorkOrderDetails{
			Products:  []entities.Product{},
			Checklist: []entities.ChecklistItem{},
		}
	case entities.DocumentKindReporte:
		doc.Report = &entities.ReportDetails{
			CompletedAt:   now.Format(time.RFC3339),
			WorkPerformed: []entities.WorkItem{},
			MaterialsUsed: []entities.Material{},
			Photos:        []string{},
		}
	}
	return doc
}

// normalize restores defaults that an explicit zero value would otherwise erase.
func normalize(doc *entities.Document, now time.Time) {
	if strings.TrimSpace(doc.Date) == "" {
		doc.Date = now.Format(dateLayout)
	}
	if doc.Status == "" {
		doc.Status = DefaultStatus(doc.Kind)
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}

	switch doc.Kind {
	case entities.DocumentKindCotizacion:
		q := doc.Quote
		if q.Products == nil {
			q.Products = []entities.Product{}
		}
		if q.Currency == "" {
			q.Currency = DefaultCurrency
		}
	case entities.DocumentKindOrdenTrabajo:
		w := doc.WorkOrder
		if w.Products == nil {
			w.Products = []entities.Product{}
		}
		if w.Checklist == nil {
			w.Checklist = []entities.ChecklistItem{}
		}
	case entities.DocumentKindReporte:
		r := doc.Report
		if r.CompletedAt == "" {
			r.CompletedAt = now.Format(time.RFC3339)
		}
		if r.WorkPerformed == nil {
			r.WorkPerformed = []entities.WorkItem{}
		}
		if r.MaterialsUsed == nil {
			r.MaterialsUsed = []entities.Material{}
		}
		if r.Photos == nil {
			r.Photos = []string{}
		}
	}
}

func withoutNulls(fields entities.Fields) entities.Fields {
	out := entities.Fields{}
	for k, v := range fields {
		if fields.Has(k) {
			out[k] = v
		}
	}
	return out
}

// Validate checks the kind-specific required fields of doc.
func Validate(doc entities.Document, kind entities.DocumentKind) error {
	switch kind {
	case entities.DocumentKindCotizacion:
		if doc.Client == nil {
			return &ValidationError{Kind: kind, Reason: "client is required"}
		}
		if doc.Quote == nil || len(doc.Quote.Products) == 0 {
			return &ValidationError{Kind: kind, Reason: "at least one product is required"}
		}
	case entities.DocumentKindOrdenTrabajo:
		if doc.Client == nil {
			return &ValidationError{Kind: kind, Reason: "client is required"}
		}
		if doc.WorkOrder == nil || len(doc.WorkOrder.Products) == 0 {
			return &ValidationError{Kind: kind, Reason: "at least one product is required"}
		}
	case entities.DocumentKindReporte:
		if doc.Client == nil {
			return &ValidationError{Kind: kind, Reason: "client is required"}
		}
		if doc.Report == nil || strings.TrimSpace(doc.Report.TechnicianWhoCompleted) == "" {
			return &ValidationError{Kind: kind, Reason: "technicianWhoCompleted is required"}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}

	if !validStatus(doc.Status) {
		return &ValidationError{Kind: kind, Reason: fmt.Sprintf("unknown status %q", doc.Status)}
	}
	return nil
}

func validStatus(s entities.DocumentStatus) bool {
	switch s {
	case entities.DocumentStatusPendiente, entities.DocumentStatusAceptado, entities.DocumentStatusRechazado,
		entities.DocumentStatusEnProceso, entities.DocumentStatusCompletado:
		return true
	}
	return false
}

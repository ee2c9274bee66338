// Package converter maps a finished document onto a pre-filled draft of the next
// document in the chain: cotizacion -> orden_trabajo -> reporte.
//
// Functions here are pure. They never validate and never share mutable state with
// their input: every slice and pointer in a draft is a fresh copy.
package converter

import (
	"errors"

	"service_documents/internal/domain/entities"
)

var ErrNoNextStage = errors.New("document kind has no next stage")

// Draft is an unpersisted, unvalidated set of fields for a new document.
type Draft interface {
	TargetKind() entities.DocumentKind
	Fields() (entities.Fields, error)
}

type WorkOrderDraft struct {
	Client            *entities.Client   `json:"client"`
	Products          []entities.Product `json:"products"`
	DeliveryAddress   string             `json:"deliveryAddress"`
	Observations      string             `json:"observations"`
	SourceQuoteNumber *string            `json:"sourceQuoteNumber"`
}

func (WorkOrderDraft) TargetKind() entities.DocumentKind { return entities.DocumentKindOrdenTrabajo }

func (d WorkOrderDraft) Fields() (entities.Fields, error) { return entities.FieldsOf(d) }

type ReportDraft struct {
	Client                 *entities.Client    `json:"client"`
	WorkPerformed          []entities.WorkItem `json:"workPerformed"`
	MaterialsUsed          []entities.Material `json:"materialsUsed"`
	TechnicianWhoCompleted string              `json:"technicianWhoCompleted"`
	SourceWorkOrderNumber  *string             `json:"sourceWorkOrderNumber"`
}

func (ReportDraft) TargetKind() entities.DocumentKind { return entities.DocumentKindReporte }

func (d ReportDraft) Fields() (entities.Fields, error) { return entities.FieldsOf(d) }

func QuoteToWorkOrderDraft(quote entities.Document) WorkOrderDraft {
	draft := WorkOrderDraft{
		Client:            copyClient(quote.Client),
		Products:          []entities.Product{},
		SourceQuoteNumber: copyString(quote.Number),
	}
	if quote.Client != nil {
		draft.DeliveryAddress = quote.Client.Address
	}
	if quote.Quote != nil {
		for _, p := range quote.Quote.Products {
			draft.Products = append(draft.Products, p.Clone())
		}
		draft.Observations = quote.Quote.Notes
	}
	return draft
}

func WorkOrderToReportDraft(order entities.Document) ReportDraft {
	draft := ReportDraft{
		Client:                copyClient(order.Client),
		WorkPerformed:         []entities.WorkItem{},
		MaterialsUsed:         []entities.Material{},
		SourceWorkOrderNumber: copyString(order.Number),
	}
	if order.WorkOrder != nil {
		draft.TechnicianWhoCompleted = order.WorkOrder.AssignedTechnician
		for _, p := range order.WorkOrder.Products {
			draft.WorkPerformed = append(draft.WorkPerformed, entities.WorkItem{
				Description: p.Description,
				Quantity:    p.Quantity,
				Completed:   false,
			})
		}
	}
	return draft
}

// NextDraft returns the draft for the stage after doc.
func NextDraft(doc entities.Document) (Draft, error) {
	switch doc.Kind {
	case entities.DocumentKindCotizacion:
		return QuoteToWorkOrderDraft(doc), nil
	case entities.DocumentKindOrdenTrabajo:
		return WorkOrderToReportDraft(doc), nil
	}
	return nil, ErrNoNextStage
}

func copyClient(c *entities.Client) *entities.Client {
	if c == nil {
		return nil
	}
	cp := c.Clone()
	return &cp
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}

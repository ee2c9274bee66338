package entities

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentKind is the discriminant of a service document.
//
// The chain is cotizacion -> orden_trabajo -> reporte. A document never changes
// its kind after creation.
type DocumentKind string

const (
	DocumentKindCotizacion   DocumentKind = "cotizacion"
	DocumentKindOrdenTrabajo DocumentKind = "orden_trabajo"
	DocumentKindReporte      DocumentKind = "reporte"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindCotizacion, DocumentKindOrdenTrabajo, DocumentKindReporte:
		return true
	}
	return false
}

// DocumentStatus represents the lifecycle of a document.
//
// Domain notes:
//   - Quotes and work orders start as pendiente.
//   - Completion reports are created already completado.
//   - rechazado is terminal.
type DocumentStatus string

const (
	DocumentStatusPendiente  DocumentStatus = "pendiente"
	DocumentStatusAceptado   DocumentStatus = "aceptado"
	DocumentStatusRechazado  DocumentStatus = "rechazado"
	DocumentStatusEnProceso  DocumentStatus = "en_proceso"
	DocumentStatusCompletado DocumentStatus = "completado"
)

// Client is the customer block copied onto every document. It is free-form:
// keys without a field here are kept in Extra and written back unchanged.
type Client struct {
	Name    string `json:"nombre,omitempty"`
	Company string `json:"empresa,omitempty"`
	Contact string `json:"contacto,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`

	Extra Extra `json:"-"`
}

type Product struct {
	Description string  `json:"descripcion"`
	Quantity    float64 `json:"cantidad"`
	UnitPrice   float64 `json:"precioUnitario"`
	Unit        string  `json:"unidad,omitempty"`
	Amount      float64 `json:"importe,omitempty"`

	Extra Extra `json:"-"`
}

type ChecklistItem struct {
	Description string `json:"descripcion"`
	Completed   bool   `json:"completado"`

	Extra Extra `json:"-"`
}

type WorkItem struct {
	Description string  `json:"descripcion"`
	Quantity    float64 `json:"cantidad"`
	Completed   bool    `json:"completado"`

	Extra Extra `json:"-"`
}

type Material struct {
	Description string  `json:"descripcion"`
	Quantity    float64 `json:"cantidad"`
	Unit        string  `json:"unidad,omitempty"`

	Extra Extra `json:"-"`
}

type (
	clientShape        Client
	productShape       Product
	checklistItemShape ChecklistItem
	workItemShape      WorkItem
	materialShape      Material
)

func (c Client) MarshalJSON() ([]byte, error) { return encodeOpen(clientShape(c), c.Extra) }

func (c *Client) UnmarshalJSON(data []byte) error {
	var v clientShape
	extra, err := decodeOpen(data, &v)
	if err != nil {
		return err
	}
	v.Extra = extra
	*c = Client(v)
	return nil
}

// Clone returns a copy of c that shares no maps with it.
func (c Client) Clone() Client {
	c.Extra = c.Extra.Clone()
	return c
}

func (p Product) MarshalJSON() ([]byte, error) { return encodeOpen(productShape(p), p.Extra) }

func (p *Product) UnmarshalJSON(data []byte) error {
	var v productShape
	extra, err := decodeOpen(data, &v)
	if err != nil {
		return err
	}
	v.Extra = extra
	*p = Product(v)
	return nil
}

// Clone returns a copy of p that shares no maps with it.
func (p Product) Clone() Product {
	p.Extra = p.Extra.Clone()
	return p
}

func (i ChecklistItem) MarshalJSON() ([]byte, error) {
	return encodeOpen(checklistItemShape(i), i.Extra)
}

func (i *ChecklistItem) UnmarshalJSON(data []byte) error {
	var v checklistItemShape
	extra, err := decodeOpen(data, &v)
	if err != nil {
		return err
	}
	v.Extra = extra
	*i = ChecklistItem(v)
	return nil
}

func (i WorkItem) MarshalJSON() ([]byte, error) { return encodeOpen(workItemShape(i), i.Extra) }

func (i *WorkItem) UnmarshalJSON(data []byte) error {
	var v workItemShape
	extra, err := decodeOpen(data, &v)
	if err != nil {
		return err
	}
	v.Extra = extra
	*i = WorkItem(v)
	return nil
}

func (m Material) MarshalJSON() ([]byte, error) { return encodeOpen(materialShape(m), m.Extra) }

func (m *Material) UnmarshalJSON(data []byte) error {
	var v materialShape
	extra, err := decodeOpen(data, &v)
	if err != nil {
		return err
	}
	v.Extra = extra
	*m = Material(v)
	return nil
}

// QuoteDetails holds the cotizacion-only fields.
type QuoteDetails struct {
	Products           []Product `json:"products"`
	Subtotal           float64   `json:"subtotal"`
	Tax                float64   `json:"tax"`
	Total              float64   `json:"total"`
	Currency           string    `json:"currency"`
	ValidityDays       int       `json:"validityDays"`
	Notes              string    `json:"notes"`
	TermsAndConditions string    `json:"termsAndConditions"`
}

// WorkOrderDetails holds the orden_trabajo-only fields.
type WorkOrderDetails struct {
	Products           []Product       `json:"products"`
	DeliveryAddress    string          `json:"deliveryAddress"`
	AssignedTechnician string          `json:"assignedTechnician"`
	ScheduledDate      string          `json:"scheduledDate"`
	Observations       string          `json:"observations"`
	Checklist          []ChecklistItem `json:"checklist"`
	SourceQuoteNumber  *string         `json:"sourceQuoteNumber"`
}

// ReportDetails holds the reporte-only fields.
type ReportDetails struct {
	TechnicianWhoCompleted string     `json:"technicianWhoCompleted"`
	CompletedAt            string     `json:"completedAt"`
	WorkPerformed          []WorkItem `json:"workPerformed"`
	MaterialsUsed          []Material `json:"materialsUsed"`
	Observations           string     `json:"observations"`
	Photos                 []string   `json:"photos"`
	ClientSignature        string     `json:"clientSignature"`
	TechnicianSignature    string     `json:"technicianSignature"`
	SourceWorkOrderNumber  *string    `json:"sourceWorkOrderNumber"`
}

// Document is one cotizacion, orden_trabajo or reporte stored on a service record.
//
// Exactly one of Quote, WorkOrder or Report is set, matching Kind. The JSON form is
// flat: the header fields and the payload fields share one object, which is the
// layout persisted in the services.documents column.
type Document struct {
	Kind      DocumentKind
	Number    *string
	Date      string
	Client    *Client
	Status    DocumentStatus
	PDFURL    *string
	CreatedBy *string
	CreatedAt time.Time

	Quote     *QuoteDetails
	WorkOrder *WorkOrderDetails
	Report    *ReportDetails
}

type documentHeader struct {
	Kind      DocumentKind   `json:"kind"`
	Number    *string        `json:"number"`
	Date      string         `json:"date"`
	Client    *Client        `json:"client"`
	Status    DocumentStatus `json:"status"`
	PDFURL    *string        `json:"pdfUrl"`
	CreatedBy *string        `json:"createdBy"`
	CreatedAt time.Time      `json:"createdAt"`
}

// NumberValue returns the business number or "" when unset.
func (d Document) NumberValue() string {
	if d.Number == nil {
		return ""
	}
	return *d.Number
}

// HasNumber reports whether the document carries exactly this business number.
func (d Document) HasNumber(number string) bool {
	return d.Number != nil && *d.Number == number
}

func (d Document) payload() any {
	switch d.Kind {
	case DocumentKindCotizacion:
		if d.Quote == nil {
			return &QuoteDetails{}
		}
		return d.Quote
	case DocumentKindOrdenTrabajo:
		if d.WorkOrder == nil {
			return &WorkOrderDetails{}
		}
		return d.WorkOrder
	case DocumentKindReporte:
		if d.Report == nil {
			return &ReportDetails{}
		}
		return d.Report
	}
	return nil
}

func (d Document) MarshalJSON() ([]byte, error) {
	fields, err := d.Fields()
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// Fields returns the flat JSON object of the document keyed by field name.
func (d Document) Fields() (Fields, error) {
	payload := d.payload()
	if payload == nil {
		return nil, fmt.Errorf("document: unknown kind %q", d.Kind)
	}
	out := Fields{}
	if err := out.mergeStruct(payload); err != nil {
		return nil, err
	}
	header := documentHeader{
		Kind:      d.Kind,
		Number:    d.Number,
		Date:      d.Date,
		Client:    d.Client,
		Status:    d.Status,
		PDFURL:    d.PDFURL,
		CreatedBy: d.CreatedBy,
		CreatedAt: d.CreatedAt,
	}
	if err := out.mergeStruct(header); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var header documentHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return err
	}

	doc := Document{
		Kind:      header.Kind,
		Number:    header.Number,
		Date:      header.Date,
		Client:    header.Client,
		Status:    header.Status,
		PDFURL:    header.PDFURL,
		CreatedBy: header.CreatedBy,
		CreatedAt: header.CreatedAt,
	}

	switch header.Kind {
	case DocumentKindCotizacion:
		doc.Quote = &QuoteDetails{}
		if err := json.Unmarshal(data, doc.Quote); err != nil {
			return err
		}
	case DocumentKindOrdenTrabajo:
		doc.WorkOrder = &WorkOrderDetails{}
		if err := json.Unmarshal(data, doc.WorkOrder); err != nil {
			return err
		}
	case DocumentKindReporte:
		doc.Report = &ReportDetails{}
		if err := json.Unmarshal(data, doc.Report); err != nil {
			return err
		}
	default:
		return fmt.Errorf("document: unknown kind %q", header.Kind)
	}

	*d = doc
	return nil
}

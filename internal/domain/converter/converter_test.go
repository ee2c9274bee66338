package converter

import (
	"encoding/json"
	"testing"

	"service_documents/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func sampleQuote() entities.Document {
	return entities.Document{
		Kind:   entities.DocumentKindCotizacion,
		Number: ptr("COT-000003"),
		Client: &entities.Client{Name: "Acme", Address: "Av. Reforma 1"},
		Status: entities.DocumentStatusAceptado,
		Quote: &entities.QuoteDetails{
			Products: []entities.Product{{Description: "Cable", Quantity: 3, UnitPrice: 10}},
			Notes:    "Acceso por puerta trasera",
		},
	}
}

func TestQuoteToWorkOrderDraft(t *testing.T) {
	quote := sampleQuote()
	draft := QuoteToWorkOrderDraft(quote)

	assert.Equal(t, entities.DocumentKindOrdenTrabajo, draft.TargetKind())
	assert.Equal(t, "Acme", draft.Client.Name)
	assert.Equal(t, "Av. Reforma 1", draft.DeliveryAddress)
	assert.Equal(t, "Acceso por puerta trasera", draft.Observations)
	assert.Equal(t, "COT-000003", *draft.SourceQuoteNumber)
	require.Len(t, draft.Products, 1)

	draft.Client.Name = "Otro"
	draft.Products[0].Quantity = 99
	*draft.SourceQuoteNumber = "COT-999999"
	assert.Equal(t, "Acme", quote.Client.Name)
	assert.Equal(t, 3.0, quote.Quote.Products[0].Quantity)
	assert.Equal(t, "COT-000003", *quote.Number)
}

func TestQuoteToWorkOrderDraft_SparseQuote(t *testing.T) {
	draft := QuoteToWorkOrderDraft(entities.Document{Kind: entities.DocumentKindCotizacion})

	assert.Nil(t, draft.Client)
	assert.Nil(t, draft.SourceQuoteNumber)
	assert.NotNil(t, draft.Products)
	assert.Empty(t, draft.DeliveryAddress)

	f, err := draft.Fields()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(f["products"]))
	assert.False(t, f.Has("sourceQuoteNumber"))
}

func TestWorkOrderToReportDraft(t *testing.T) {
	order := entities.Document{
		Kind:   entities.DocumentKindOrdenTrabajo,
		Number: ptr("OT-000001"),
		Client: &entities.Client{Name: "Acme"},
		WorkOrder: &entities.WorkOrderDetails{
			AssignedTechnician: "Luis",
			Products: []entities.Product{
				{Description: "Cable", Quantity: 3},
				{Description: "Conector", Quantity: 8},
			},
		},
	}
	draft := WorkOrderToReportDraft(order)

	assert.Equal(t, entities.DocumentKindReporte, draft.TargetKind())
	assert.Equal(t, "Luis", draft.TechnicianWhoCompleted)
	assert.Equal(t, "OT-000001", *draft.SourceWorkOrderNumber)
	assert.Equal(t, []entities.WorkItem{
		{Description: "Cable", Quantity: 3},
		{Description: "Conector", Quantity: 8},
	}, draft.WorkPerformed)
	assert.NotNil(t, draft.MaterialsUsed)

	draft.Client.Name = "Otro"
	assert.Equal(t, "Acme", order.Client.Name)
}

func TestNextDraft(t *testing.T) {
	d, err := NextDraft(sampleQuote())
	require.NoError(t, err)
	assert.IsType(t, WorkOrderDraft{}, d)

	d, err = NextDraft(entities.Document{Kind: entities.DocumentKindOrdenTrabajo})
	require.NoError(t, err)
	assert.IsType(t, ReportDraft{}, d)

	_, err = NextDraft(entities.Document{Kind: entities.DocumentKindReporte})
	assert.ErrorIs(t, err, ErrNoNextStage)
}

func TestQuoteToWorkOrderDraft_KeepsUndeclaredKeys(t *testing.T) {
	quote := sampleQuote()
	quote.Client.Extra = entities.Extra{"rfc": json.RawMessage(`"XAXX010101000"`)}
	quote.Quote.Products[0].Extra = entities.Extra{"modelo": json.RawMessage(`"W-9"`)}

	draft := QuoteToWorkOrderDraft(quote)
	f, err := draft.Fields()
	require.NoError(t, err)
	assert.Contains(t, string(f["client"]), `"rfc":"XAXX010101000"`)
	assert.Contains(t, string(f["products"]), `"modelo":"W-9"`)

	draft.Client.Extra["rfc"] = json.RawMessage(`"OTRO"`)
	draft.Products[0].Extra["modelo"] = json.RawMessage(`"Z-1"`)
	assert.Equal(t, `"XAXX010101000"`, string(quote.Client.Extra["rfc"]))
	assert.Equal(t, `"W-9"`, string(quote.Quote.Products[0].Extra["modelo"]))
}

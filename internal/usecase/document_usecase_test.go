package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"service_documents/internal/domain/converter"
	"service_documents/internal/domain/document"
	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"
	mock_interfaces "service_documents/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memRepo is an in-memory IServiceRecordRepository with the same version
// semantics as the real adapters.
type memRepo struct {
	mu      sync.Mutex
	records map[string]entities.ServiceRecord
}

func newMemRepo(ids ...string) *memRepo {
	r := &memRepo{records: map[string]entities.ServiceRecord{}}
	for _, id := range ids {
		r.records[id] = entities.ServiceRecord{ID: id, Name: "Service " + id}
	}
	return r
}

func (r *memRepo) GetByID(_ context.Context, id string) (entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.records[id]
	rec.Documents = append([]entities.Document(nil), rec.Documents...)
	rec.History = append([]entities.HistoryEvent(nil), rec.History...)
	return rec, nil
}

func (r *memRepo) ListAll(_ context.Context) ([]entities.ServiceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.ServiceRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRepo) SaveDocuments(_ context.Context, id string, docs []entities.Document, expected int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return interfaces.ErrServiceRecordNotFound
	}
	if rec.Version != expected {
		return interfaces.ErrVersionConflict
	}
	rec.Documents = append([]entities.Document(nil), docs...)
	rec.Version++
	r.records[id] = rec
	return nil
}

func (r *memRepo) SaveHistory(_ context.Context, id string, history []entities.HistoryEvent, expected int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return interfaces.ErrServiceRecordNotFound
	}
	if rec.Version != expected {
		return interfaces.ErrVersionConflict
	}
	rec.History = append([]entities.HistoryEvent(nil), history...)
	rec.Version++
	r.records[id] = rec
	return nil
}

func newScenarioUseCase(repo *memRepo) *DocumentUseCase {
	log := logger.NewNop()
	uc := NewDocumentUseCase(NewDocumentStore(repo, 0, log), nil, nil, nil, log)
	uc.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return uc
}

func mustFields(t *testing.T, raw string) entities.Fields {
	t.Helper()
	f, err := entities.ParseFields([]byte(raw))
	if err != nil {
		t.Fatalf("parse fields: %v", err)
	}
	return f
}

const acmeQuote = `{"number":"COT-000001","client":{"nombre":"Acme"},"products":[{"descripcion":"Widget","cantidad":2,"precioUnitario":100}]}`

func TestDocumentUseCase_Scenarios(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("42")
	uc := newScenarioUseCase(repo)

	// Create a quote.
	quote, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, acmeQuote)})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	if quote.NumberValue() != "COT-000001" || quote.Status != entities.DocumentStatusPendiente {
		t.Fatalf("unexpected quote: %+v", quote)
	}
	docs, _ := uc.GetDocuments(ctx, "42")
	history, _ := uc.GetHistory(ctx, "42")
	if len(docs) != 1 || len(history) != 1 || history[0].Type != "cotizacion_created" {
		t.Fatalf("expected 1 doc and 1 cotizacion_created event, got %d docs %+v", len(docs), history)
	}

	// Preview the conversion to a work order.
	preview, err := uc.PreviewConversion(ctx, "42", entities.DocumentKindCotizacion, "COT-000001")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	draft, ok := preview.Draft.(converter.WorkOrderDraft)
	if !ok {
		t.Fatalf("expected WorkOrderDraft, got %T", preview.Draft)
	}
	if draft.DeliveryAddress != "" || len(draft.Products) != 1 || draft.Products[0].Description != "Widget" ||
		draft.SourceQuoteNumber == nil || *draft.SourceQuoteNumber != "COT-000001" {
		t.Fatalf("unexpected draft: %+v", draft)
	}

	// A work order without a client is rejected and nothing is stored.
	_, err = uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindOrdenTrabajo, Fields: mustFields(t, `{"client":null,"products":[{"descripcion":"x"}]}`)})
	if !errors.Is(err, document.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	docs, _ = uc.GetDocuments(ctx, "42")
	if len(docs) != 1 {
		t.Fatalf("expected documents unchanged, got %d", len(docs))
	}

	// Delete the quote.
	if err := uc.DeleteDocument(ctx, "42", "COT-000001", ""); err != nil {
		t.Fatalf("delete: %v", err)
	}
	docs, _ = uc.GetDocuments(ctx, "42")
	history, _ = uc.GetHistory(ctx, "42")
	if len(docs) != 0 {
		t.Fatalf("expected no documents, got %d", len(docs))
	}
	last := history[len(history)-1]
	if last.Type != "documento_eliminado" || !strings.Contains(last.Description, "COT-000001") || last.User == nil || *last.User != "System" {
		t.Fatalf("unexpected delete event: %+v", last)
	}
}

func TestDocumentUseCase_CreateFromUpstream(t *testing.T) {
	ctx := context.Background()

	t.Run("draft fields are the base and caller fields win", func(t *testing.T) {
		repo := newMemRepo("42")
		uc := newScenarioUseCase(repo)
		if _, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, acmeQuote)}); err != nil {
			t.Fatalf("create quote: %v", err)
		}

		order, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "42",
			Kind:      entities.DocumentKindOrdenTrabajo,
			Fields:    mustFields(t, `{"fromQuoteNumber":"COT-000001","assignedTechnician":"Luis","deliveryAddress":"Calle 1"}`),
			User:      "ana",
		})
		if err != nil {
			t.Fatalf("create order: %v", err)
		}
		if order.NumberValue() != "OT-000001" {
			t.Fatalf("expected server-assigned OT-000001, got %s", order.NumberValue())
		}
		w := order.WorkOrder
		if len(w.Products) != 1 || w.DeliveryAddress != "Calle 1" || w.AssignedTechnician != "Luis" ||
			w.SourceQuoteNumber == nil || *w.SourceQuoteNumber != "COT-000001" {
			t.Fatalf("unexpected work order: %+v", w)
		}
		if order.CreatedBy == nil || *order.CreatedBy != "ana" {
			t.Fatalf("expected createdBy from acting user, got %v", order.CreatedBy)
		}

		history, _ := uc.GetHistory(ctx, "42")
		last := history[len(history)-1]
		if last.Type != "orden_trabajo_created" || !strings.Contains(last.Description, "COT-000001") || last.Metadata["source"] != "COT-000001" {
			t.Fatalf("unexpected event: %+v", last)
		}
	})

	t.Run("missing upstream reference falls back to caller fields", func(t *testing.T) {
		repo := newMemRepo("42")
		uc := newScenarioUseCase(repo)

		report, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "42",
			Kind:      entities.DocumentKindReporte,
			Fields:    mustFields(t, `{"fromWorkOrderNumber":"OT-404","client":{"nombre":"Acme"},"technicianWhoCompleted":"Luis"}`),
		})
		if err != nil {
			t.Fatalf("expected silent fallback, got %v", err)
		}
		if report.Report.SourceWorkOrderNumber != nil {
			t.Fatalf("expected no back-reference, got %v", *report.Report.SourceWorkOrderNumber)
		}
		if report.Status != entities.DocumentStatusCompletado {
			t.Fatalf("expected completado, got %s", report.Status)
		}
	})
}

func TestDocumentUseCase_ValidationGate(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("42")
	uc := newScenarioUseCase(repo)

	_, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, `{"client":null,"products":[]}`)})
	if !errors.Is(err, document.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, `{"client":{"nombre":"A"},"products":[{"descripcion":"B"}]}`)})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	_, err = uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: "factura", Fields: entities.Fields{}})
	if !errors.Is(err, ErrUnknownDocumentKind) {
		t.Fatalf("expected ErrUnknownDocumentKind, got %v", err)
	}

	_, err = uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "43", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, acmeQuote)})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestDocumentUseCase_UpdateAndTransitions(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("42")
	uc := newScenarioUseCase(repo)
	if _, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: "42", Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, acmeQuote)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{
		ServiceID: "42",
		Number:    "COT-000001",
		Patch:     mustFields(t, `{"kind":"reporte","products":[],"notes":"sin stock"}`),
		User:      "ana",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Kind != entities.DocumentKindCotizacion {
		t.Fatalf("kind changed to %s", updated.Kind)
	}
	// Updates skip validation, so an empty product list is accepted.
	if len(updated.Quote.Products) != 0 || updated.Quote.Notes != "sin stock" || updated.Client.Name != "Acme" {
		t.Fatalf("unexpected update: %+v %+v", updated, updated.Quote)
	}

	accepted, err := uc.AcceptDocument(ctx, "42", "COT-000001", "ana")
	if err != nil || accepted.Status != entities.DocumentStatusAceptado {
		t.Fatalf("accept: %+v %v", accepted, err)
	}
	if _, err := uc.RejectDocument(ctx, "42", "COT-000001", "ana"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	history, _ := uc.GetHistory(ctx, "42")
	types := make([]string, 0, len(history))
	for _, h := range history {
		types = append(types, h.Type)
	}
	if strings.Join(types, ",") != "cotizacion_created,cotizacion_updated,cotizacion_accepted" {
		t.Fatalf("unexpected history: %v", types)
	}

	if _, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "42", Number: "COT-404", Patch: entities.Fields{}}); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	history2, _ := uc.GetHistory(ctx, "42")
	if len(history2) != len(history) {
		t.Fatalf("failed update must not append history")
	}
}

func TestDocumentUseCase_KeepsFreeFormClientAndProductKeys(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("42")
	uc := newScenarioUseCase(repo)

	_, err := uc.CreateDocument(ctx, CreateDocumentCommand{
		ServiceID: "42",
		Kind:      entities.DocumentKindCotizacion,
		Fields: mustFields(t, `{
			"client":{"nombre":"Acme","rfc":"XAXX010101000","ciudad":"CDMX"},
			"products":[{"descripcion":"Widget","cantidad":2,"precioUnitario":100,"modelo":"W-9"}]
		}`),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "42", Number: "COT-000001", Patch: mustFields(t, `{"notes":"urgente"}`)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	docs, err := uc.GetDocuments(ctx, "42")
	if err != nil || len(docs) != 1 {
		t.Fatalf("get documents: %v %v", docs, err)
	}
	// Round-trip through the persisted column encoding.
	column, err := entities.EncodeDocuments(docs)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	stored, err := entities.DecodeDocuments(column)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	raw, _ := json.Marshal(stored[0])
	for _, want := range []string{`"rfc":"XAXX010101000"`, `"ciudad":"CDMX"`, `"modelo":"W-9"`, `"notes":"urgente"`} {
		if !strings.Contains(string(raw), want) {
			t.Fatalf("expected %s in stored document, got %s", want, raw)
		}
	}
}

func TestDocumentUseCase_PreviewConversion(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo("42")
	uc := newScenarioUseCase(repo)

	if _, err := uc.PreviewConversion(ctx, "42", entities.DocumentKindCotizacion, "COT-404"); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}

	if _, err := uc.CreateDocument(ctx, CreateDocumentCommand{
		ServiceID: "42",
		Kind:      entities.DocumentKindReporte,
		Fields:    mustFields(t, `{"number":"RPT-1","client":{"nombre":"A"},"technicianWhoCompleted":"Luis"}`),
	}); err != nil {
		t.Fatalf("create report: %v", err)
	}
	if _, err := uc.PreviewConversion(ctx, "42", entities.DocumentKindReporte, "RPT-1"); !errors.Is(err, converter.ErrNoNextStage) {
		t.Fatalf("expected ErrNoNextStage, got %v", err)
	}

	history, _ := uc.GetHistory(ctx, "42")
	if len(history) != 1 {
		t.Fatalf("preview must not write history, got %d events", len(history))
	}
}

func TestDocumentUseCase_Collaborators(t *testing.T) {
	ctx := context.Background()
	quote := quoteDoc("COT-000001", "2024-01-01")

	t.Run("pdf upload sets pdfUrl and publish failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uploader := mock_interfaces.NewMockIFileUploader(ctrl)
		publisher := mock_interfaces.NewMockIHistoryPublisher(ctrl)
		cache := mock_interfaces.NewMockIQuoteListCache(ctrl)
		uc := NewDocumentUseCase(store, uploader, publisher, cache, logger.NewNop())

		uploader.EXPECT().Upload(gomock.Any(), "svc-1", "q.pdf", gomock.Any()).Return("/uploads/svc-1/q.pdf", nil)
		store.EXPECT().AppendDocumentWith(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, build func([]entities.Document) (entities.Document, error)) (entities.Document, error) {
				return build([]entities.Document{quote})
			},
		)
		store.EXPECT().AppendHistoryEvent(gomock.Any(), "svc-1", gomock.Any()).Return(nil, nil)
		publisher.EXPECT().PublishHistoryEvent(gomock.Any(), "svc-1", gomock.Any()).Return(errors.New("nats down"))
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		created, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "svc-1",
			Kind:      entities.DocumentKindCotizacion,
			Fields:    mustFields(t, `{"client":{"nombre":"A"},"products":[{"descripcion":"B"}]}`),
			PDF:       &FileUpload{Filename: "q.pdf", Content: strings.NewReader("%PDF")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.PDFURL == nil || *created.PDFURL != "/uploads/svc-1/q.pdf" {
			t.Fatalf("expected pdf url, got %v", created.PDFURL)
		}
		if created.NumberValue() != "COT-000002" {
			t.Fatalf("expected next number COT-000002, got %s", created.NumberValue())
		}
	})

	t.Run("upload failure stops before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uploader := mock_interfaces.NewMockIFileUploader(ctrl)
		uc := NewDocumentUseCase(store, uploader, nil, nil, logger.NewNop())

		uploader.EXPECT().Upload(gomock.Any(), "svc-1", "q.pdf", gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "svc-1",
			Kind:      entities.DocumentKindCotizacion,
			Fields:    mustFields(t, `{"client":{"nombre":"A"},"products":[{"descripcion":"B"}]}`),
			PDF:       &FileUpload{Filename: "q.pdf", Content: strings.NewReader("%PDF")},
		})
		if err == nil || !strings.Contains(err.Error(), "disk full") {
			t.Fatalf("expected upload error, got %v", err)
		}
	})

	t.Run("pdf without uploader", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewDocumentUseCase(store, nil, nil, nil, logger.NewNop())

		store.EXPECT().UpdateDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "svc-1", Number: "COT-1", PDF: &FileUpload{Filename: "x.pdf", Content: strings.NewReader("x")}})
		if !errors.Is(err, ErrUploaderNotConfigured) {
			t.Fatalf("expected ErrUploaderNotConfigured, got %v", err)
		}
	})

	t.Run("update with pdf patches pdfUrl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uploader := mock_interfaces.NewMockIFileUploader(ctrl)
		uc := NewDocumentUseCase(store, uploader, nil, nil, logger.NewNop())

		uploader.EXPECT().Upload(gomock.Any(), "svc-1", "new.pdf", gomock.Any()).Return("/uploads/new.pdf", nil)
		store.EXPECT().UpdateDocument(gomock.Any(), "svc-1", "COT-000001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, patch entities.Fields) (entities.Document, error) {
				if url, _ := patch.String("pdfUrl"); url != "/uploads/new.pdf" {
					t.Fatalf("expected pdfUrl in patch, got %s", url)
				}
				return entities.MergeDocument(quote, patch)
			},
		)
		store.EXPECT().AppendHistoryEvent(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, e entities.HistoryEvent) ([]entities.HistoryEvent, error) {
				if e.Type != "cotizacion_updated" {
					t.Fatalf("unexpected event type %s", e.Type)
				}
				return []entities.HistoryEvent{e}, nil
			},
		)

		updated, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "svc-1", Number: "COT-000001", PDF: &FileUpload{Filename: "new.pdf", Content: strings.NewReader("x")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PDFURL == nil || *updated.PDFURL != "/uploads/new.pdf" {
			t.Fatalf("expected pdf url on document, got %v", updated.PDFURL)
		}
	})

	t.Run("failed create removes the uploaded pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uploader := mock_interfaces.NewMockIFileUploader(ctrl)
		uc := NewDocumentUseCase(store, uploader, nil, nil, logger.NewNop())

		uploader.EXPECT().Upload(gomock.Any(), "svc-404", "q.pdf", gomock.Any()).Return("/uploads/svc-404/q.pdf", nil)
		store.EXPECT().AppendDocumentWith(gomock.Any(), "svc-404", gomock.Any()).Return(entities.Document{}, ErrServiceNotFound)
		uploader.EXPECT().Remove(gomock.Any(), "/uploads/svc-404/q.pdf").Return(nil)

		_, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "svc-404",
			Kind:      entities.DocumentKindCotizacion,
			Fields:    mustFields(t, `{"client":{"nombre":"A"},"products":[{"descripcion":"B"}]}`),
			PDF:       &FileUpload{Filename: "q.pdf", Content: strings.NewReader("%PDF")},
		})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("failed update removes the uploaded pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uploader := mock_interfaces.NewMockIFileUploader(ctrl)
		uc := NewDocumentUseCase(store, uploader, nil, nil, logger.NewNop())

		uploader.EXPECT().Upload(gomock.Any(), "svc-1", "new.pdf", gomock.Any()).Return("/uploads/svc-1/new.pdf", nil)
		store.EXPECT().UpdateDocument(gomock.Any(), "svc-1", "COT-000001", gomock.Any()).Return(entities.Document{}, ErrConcurrentModification)
		uploader.EXPECT().Remove(gomock.Any(), "/uploads/svc-1/new.pdf").Return(errors.New("gone"))

		_, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "svc-1", Number: "COT-000001", PDF: &FileUpload{Filename: "new.pdf", Content: strings.NewReader("x")}})
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})

	t.Run("quotes cache is invalidated even when history fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		cache := mock_interfaces.NewMockIQuoteListCache(ctrl)
		uc := NewDocumentUseCase(store, nil, nil, cache, logger.NewNop())

		store.EXPECT().AppendDocumentWith(gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, build func([]entities.Document) (entities.Document, error)) (entities.Document, error) {
				return build(nil)
			},
		)
		store.EXPECT().AppendHistoryEvent(gomock.Any(), "svc-1", gomock.Any()).Return(nil, errors.New("db"))
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		_, err := uc.CreateDocument(ctx, CreateDocumentCommand{
			ServiceID: "svc-1",
			Kind:      entities.DocumentKindCotizacion,
			Fields:    mustFields(t, `{"client":{"nombre":"A"},"products":[{"descripcion":"B"}]}`),
		})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("history failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewDocumentUseCase(store, nil, nil, nil, logger.NewNop())

		store.EXPECT().RemoveDocument(gomock.Any(), "svc-1", "COT-1").Return(1, nil)
		store.EXPECT().AppendHistoryEvent(gomock.Any(), "svc-1", gomock.Any()).Return(nil, errors.New("db"))

		if err := uc.DeleteDocument(ctx, "svc-1", "COT-1", "ana"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDocumentUseCase_ListAllQuotes(t *testing.T) {
	ctx := context.Background()
	listing := []entities.QuoteListing{{ServiceID: "42", Quote: quoteDoc("COT-1", "2024-01-01")}}

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		cache := mock_interfaces.NewMockIQuoteListCache(ctrl)
		uc := NewDocumentUseCase(store, nil, nil, cache, logger.NewNop())

		cache.EXPECT().Get(gomock.Any()).Return(listing, true, nil)

		out, err := uc.ListAllQuotes(ctx)
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result %v %v", out, err)
		}
	})

	t.Run("cache miss reads through and fills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIDocumentStore(ctrl)
		cache := mock_interfaces.NewMockIQuoteListCache(ctrl)
		uc := NewDocumentUseCase(store, nil, nil, cache, logger.NewNop())

		cache.EXPECT().Get(gomock.Any()).Return(nil, false, errors.New("redis down"))
		store.EXPECT().ListAllQuotes(gomock.Any()).Return(listing, nil)
		cache.EXPECT().Set(gomock.Any(), listing).Return(nil)

		out, err := uc.ListAllQuotes(ctx)
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result %v %v", out, err)
		}
	})

	t.Run("across services newest first", func(t *testing.T) {
		repo := newMemRepo("42", "43")
		uc := newScenarioUseCase(repo)
		mk := func(svc, number, date string) {
			raw, _ := json.Marshal(map[string]any{
				"number": number, "date": date,
				"client":   map[string]any{"nombre": "A"},
				"products": []map[string]any{{"descripcion": "B"}},
			})
			if _, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: svc, Kind: entities.DocumentKindCotizacion, Fields: mustFields(t, string(raw))}); err != nil {
				t.Fatalf("create: %v", err)
			}
		}
		mk("42", "A", "2024-01-01")
		mk("43", "B", "2024-06-01")

		out, err := uc.ListAllQuotes(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 || out[0].Quote.NumberValue() != "B" || out[0].ServiceID != "43" || out[1].ServiceID != "42" {
			t.Fatalf("unexpected order: %+v", out)
		}
	})
}

func TestDocumentUseCase_InputChecks(t *testing.T) {
	uc := NewDocumentUseCase(nil, nil, nil, nil, logger.NewNop())
	ctx := context.Background()

	if _, err := uc.CreateDocument(ctx, CreateDocumentCommand{ServiceID: " ", Kind: entities.DocumentKindCotizacion}); !errors.Is(err, ErrInvalidServiceID) {
		t.Fatalf("expected ErrInvalidServiceID, got %v", err)
	}
	if _, err := uc.UpdateDocument(ctx, UpdateDocumentCommand{ServiceID: "42", Number: " "}); !errors.Is(err, ErrInvalidDocumentNumber) {
		t.Fatalf("expected ErrInvalidDocumentNumber, got %v", err)
	}
	if err := uc.DeleteDocument(ctx, "", "COT-1", ""); !errors.Is(err, ErrInvalidServiceID) {
		t.Fatalf("expected ErrInvalidServiceID, got %v", err)
	}
	if _, err := uc.AcceptDocument(ctx, "42", "", ""); !errors.Is(err, ErrInvalidDocumentNumber) {
		t.Fatalf("expected ErrInvalidDocumentNumber, got %v", err)
	}
	if _, err := uc.GetDocumentsByKind(ctx, "42", "factura"); !errors.Is(err, ErrUnknownDocumentKind) {
		t.Fatalf("expected ErrUnknownDocumentKind, got %v", err)
	}
	if _, err := uc.PreviewConversion(ctx, "42", "factura", "X"); !errors.Is(err, ErrUnknownDocumentKind) {
		t.Fatalf("expected ErrUnknownDocumentKind, got %v", err)
	}
}

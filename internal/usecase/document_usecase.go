package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"service_documents/internal/domain/converter"
	"service_documents/internal/domain/document"
	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"
)

var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrUploaderNotConfigured  = errors.New("file uploader not configured")
	ErrEmptyUpload            = errors.New("uploaded file is empty")
	ErrUnknownDocumentKind    = document.ErrUnknownDocumentKind
	ErrDocumentValidation     = document.ErrValidation
	ErrConversionNotAvailable = converter.ErrNoNextStage
)

const (
	defaultActor             = "System"
	eventDocumentDeleted     = "documento_eliminado"
	fieldFromQuoteNumber     = "fromQuoteNumber"
	fieldFromWorkOrderNumber = "fromWorkOrderNumber"
)

var historyDescriptionByKind = map[entities.DocumentKind]string{
	entities.DocumentKindCotizacion:   "Cotización",
	entities.DocumentKindOrdenTrabajo: "Orden de trabajo",
	entities.DocumentKindReporte:      "Reporte de servicio",
}

// FileUpload is a PDF received alongside a create or update request.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

type CreateDocumentCommand struct {
	ServiceID string
	Kind      entities.DocumentKind
	Fields    entities.Fields
	PDF       *FileUpload
	User      string
}

type UpdateDocumentCommand struct {
	ServiceID string
	Number    string
	Patch     entities.Fields
	PDF       *FileUpload
	User      string
}

// ConversionPreview is the draft of the next stage for an existing document.
type ConversionPreview struct {
	Draft    converter.Draft
	Original entities.Document
}

// IDocumentUseCase exposes the document lifecycle of a service:
//   - create a cotizacion, orden_trabajo or reporte, optionally pre-filled from the
//     upstream document (fromQuoteNumber / fromWorkOrderNumber)
//   - update, accept, reject and delete by number
//   - read documents, history and the cross-service quotes listing
//   - preview the conversion of a document into the next stage

type IDocumentUseCase interface {
	CreateDocument(ctx context.Context, cmd CreateDocumentCommand) (entities.Document, error)
	UpdateDocument(ctx context.Context, cmd UpdateDocumentCommand) (entities.Document, error)
	AcceptDocument(ctx context.Context, serviceID, number, user string) (entities.Document, error)
	RejectDocument(ctx context.Context, serviceID, number, user string) (entities.Document, error)
	DeleteDocument(ctx context.Context, serviceID, number, user string) error
	GetDocuments(ctx context.Context, serviceID string) ([]entities.Document, error)
	GetDocumentsByKind(ctx context.Context, serviceID string, kind entities.DocumentKind) ([]entities.Document, error)
	GetHistory(ctx context.Context, serviceID string) ([]entities.HistoryEvent, error)
	ListAllQuotes(ctx context.Context) ([]entities.QuoteListing, error)
	PreviewConversion(ctx context.Context, serviceID string, kind entities.DocumentKind, number string) (ConversionPreview, error)
}

type DocumentUseCase struct {
	store     interfaces.IDocumentStore
	uploader  interfaces.IFileUploader
	publisher interfaces.IHistoryPublisher
	cache     interfaces.IQuoteListCache
	log       *logger.Logger
	now       func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase wires the document flow. uploader, publisher and cache may be
// nil: uploads are then rejected, publishing and caching are skipped.
func NewDocumentUseCase(
	store interfaces.IDocumentStore,
	uploader interfaces.IFileUploader,
	publisher interfaces.IHistoryPublisher,
	cache interfaces.IQuoteListCache,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		store:     store,
		uploader:  uploader,
		publisher: publisher,
		cache:     cache,
		log:       log.With("component", "DocumentUseCase"),
		now:       time.Now,
	}
}

func (u *DocumentUseCase) CreateDocument(ctx context.Context, cmd CreateDocumentCommand) (entities.Document, error) {
	serviceID := strings.TrimSpace(cmd.ServiceID)
	if serviceID == "" {
		return entities.Document{}, ErrInvalidServiceID
	}
	if !cmd.Kind.Valid() {
		return entities.Document{}, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, cmd.Kind)
	}
	fields := cmd.Fields
	if fields == nil {
		fields = entities.Fields{}
	}

	fields, source, err := u.applyUpstreamDraft(ctx, serviceID, cmd.Kind, fields)
	if err != nil {
		return entities.Document{}, err
	}

	now := u.now().UTC()
	doc, err := document.New(cmd.Kind, fields, now)
	if err != nil {
		return entities.Document{}, err
	}
	if doc.CreatedBy == nil && strings.TrimSpace(cmd.User) != "" {
		user := strings.TrimSpace(cmd.User)
		doc.CreatedBy = &user
	}
	if err := document.Validate(doc, cmd.Kind); err != nil {
		u.log.Info("document rejected by validation", "service_id", serviceID, "kind", cmd.Kind, "error", err)
		return entities.Document{}, err
	}

	var uploaded string
	if cmd.PDF != nil {
		url, err := u.upload(ctx, serviceID, cmd.PDF)
		if err != nil {
			return entities.Document{}, err
		}
		uploaded = url
		doc.PDFURL = &url
	}

	created, err := u.store.AppendDocumentWith(ctx, serviceID, func(existing []entities.Document) (entities.Document, error) {
		d := doc
		if d.Number == nil || strings.TrimSpace(*d.Number) == "" {
			n := document.NextNumber(cmd.Kind, existing)
			d.Number = &n
		}
		return d, nil
	})
	if err != nil {
		u.discardUpload(ctx, serviceID, uploaded)
		return entities.Document{}, err
	}
	u.invalidateQuotes(ctx, cmd.Kind)

	description := fmt.Sprintf("%s %s creada", historyDescriptionByKind[cmd.Kind], created.NumberValue())
	metadata := map[string]any{"kind": string(cmd.Kind), "number": created.NumberValue()}
	if source != "" {
		description += " a partir de " + source
		metadata["source"] = source
	}
	event := entities.NewHistoryEvent(string(cmd.Kind)+"_created", description, actorOrNil(cmd.User, created.CreatedBy), metadata, now)
	if err := u.appendHistory(ctx, serviceID, event); err != nil {
		return entities.Document{}, err
	}

	u.log.Info("document created", "service_id", serviceID, "kind", cmd.Kind, "number", created.NumberValue(), "source", source)
	return created, nil
}

// applyUpstreamDraft resolves fromQuoteNumber / fromWorkOrderNumber. When the
// reference resolves, the converter draft is used as the base and caller fields
// win on conflict. A reference that does not resolve is not an error: creation
// continues with the caller fields only.
func (u *DocumentUseCase) applyUpstreamDraft(
	ctx context.Context,
	serviceID string,
	kind entities.DocumentKind,
	fields entities.Fields,
) (entities.Fields, string, error) {
	var (
		refKey       string
		upstreamKind entities.DocumentKind
	)
	switch kind {
	case entities.DocumentKindOrdenTrabajo:
		refKey, upstreamKind = fieldFromQuoteNumber, entities.DocumentKindCotizacion
	case entities.DocumentKindReporte:
		refKey, upstreamKind = fieldFromWorkOrderNumber, entities.DocumentKindOrdenTrabajo
	default:
		return fields, "", nil
	}

	ref, _ := fields.String(refKey)
	ref = strings.TrimSpace(ref)
	fields = fields.Without(refKey)
	if ref == "" {
		return fields, "", nil
	}

	upstream, found, err := u.store.FindDocument(ctx, serviceID, upstreamKind, ref)
	if err != nil {
		return nil, "", err
	}
	if !found {
		u.log.Info("upstream document not found, using caller fields only", "service_id", serviceID, "kind", kind, "reference", ref)
		return fields, "", nil
	}

	draft, err := converter.NextDraft(upstream)
	if err != nil {
		return nil, "", err
	}
	base, err := draft.Fields()
	if err != nil {
		return nil, "", err
	}
	return base.Overlay(fields), ref, nil
}

func (u *DocumentUseCase) UpdateDocument(ctx context.Context, cmd UpdateDocumentCommand) (entities.Document, error) {
	serviceID := strings.TrimSpace(cmd.ServiceID)
	if serviceID == "" {
		return entities.Document{}, ErrInvalidServiceID
	}
	number := strings.TrimSpace(cmd.Number)
	if number == "" {
		return entities.Document{}, ErrInvalidDocumentNumber
	}

	patch := entities.Fields{}.Overlay(cmd.Patch).Without("kind")
	var uploaded string
	if cmd.PDF != nil {
		url, err := u.upload(ctx, serviceID, cmd.PDF)
		if err != nil {
			return entities.Document{}, err
		}
		uploaded = url
		if err := patch.Set("pdfUrl", url); err != nil {
			u.discardUpload(ctx, serviceID, uploaded)
			return entities.Document{}, err
		}
	}

	// Updates are not re-validated: a patch may leave a document in a state
	// creation would reject.
	updated, err := u.store.UpdateDocument(ctx, serviceID, number, patch)
	if err != nil {
		u.discardUpload(ctx, serviceID, uploaded)
		return entities.Document{}, err
	}
	u.invalidateQuotes(ctx, updated.Kind)

	keys := patch.Keys()
	sort.Strings(keys)
	event := entities.NewHistoryEvent(
		string(updated.Kind)+"_updated",
		fmt.Sprintf("%s %s actualizada", historyDescriptionByKind[updated.Kind], number),
		actorOrNil(cmd.User, nil),
		map[string]any{"kind": string(updated.Kind), "number": number, "fields": keys},
		u.now(),
	)
	if err := u.appendHistory(ctx, serviceID, event); err != nil {
		return entities.Document{}, err
	}
	return updated, nil
}

func (u *DocumentUseCase) AcceptDocument(ctx context.Context, serviceID, number, user string) (entities.Document, error) {
	return u.transition(ctx, serviceID, number, user, entities.DocumentStatusAceptado, "accepted", "aceptada")
}

func (u *DocumentUseCase) RejectDocument(ctx context.Context, serviceID, number, user string) (entities.Document, error) {
	return u.transition(ctx, serviceID, number, user, entities.DocumentStatusRechazado, "rejected", "rechazada")
}

// transition moves a pendiente document to target. Any other starting status is
// ErrInvalidTransition; rechazado is terminal.
func (u *DocumentUseCase) transition(
	ctx context.Context,
	serviceID, number, user string,
	target entities.DocumentStatus,
	eventSuffix, verb string,
) (entities.Document, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Document{}, ErrInvalidServiceID
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Document{}, ErrInvalidDocumentNumber
	}

	var previous entities.DocumentStatus
	updated, err := u.store.UpdateDocumentWith(ctx, serviceID, number, func(current entities.Document) (entities.Document, error) {
		if current.Status != entities.DocumentStatusPendiente {
			return entities.Document{}, fmt.Errorf("%w: %s is %s", ErrInvalidTransition, number, current.Status)
		}
		previous = current.Status
		current.Status = target
		return current, nil
	})
	if err != nil {
		return entities.Document{}, err
	}
	u.invalidateQuotes(ctx, updated.Kind)

	event := entities.NewHistoryEvent(
		string(updated.Kind)+"_"+eventSuffix,
		fmt.Sprintf("%s %s %s", historyDescriptionByKind[updated.Kind], number, verb),
		actorOrNil(user, nil),
		map[string]any{"kind": string(updated.Kind), "number": number, "from": string(previous), "to": string(target)},
		u.now(),
	)
	if err := u.appendHistory(ctx, serviceID, event); err != nil {
		return entities.Document{}, err
	}
	return updated, nil
}

func (u *DocumentUseCase) DeleteDocument(ctx context.Context, serviceID, number, user string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrInvalidServiceID
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrInvalidDocumentNumber
	}

	removed, err := u.store.RemoveDocument(ctx, serviceID, number)
	if err != nil {
		return err
	}
	u.invalidateQuotes(ctx, entities.DocumentKindCotizacion)

	actor := strings.TrimSpace(user)
	if actor == "" {
		actor = defaultActor
	}
	event := entities.NewHistoryEvent(
		eventDocumentDeleted,
		fmt.Sprintf("Documento %s eliminado por %s", number, actor),
		&actor,
		map[string]any{"number": number, "removed": removed},
		u.now(),
	)
	if err := u.appendHistory(ctx, serviceID, event); err != nil {
		return err
	}
	return nil
}

func (u *DocumentUseCase) GetDocuments(ctx context.Context, serviceID string) ([]entities.Document, error) {
	return u.store.GetDocuments(ctx, serviceID)
}

func (u *DocumentUseCase) GetDocumentsByKind(ctx context.Context, serviceID string, kind entities.DocumentKind) ([]entities.Document, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}
	return u.store.FindDocumentsByKind(ctx, serviceID, kind)
}

func (u *DocumentUseCase) GetHistory(ctx context.Context, serviceID string) ([]entities.HistoryEvent, error) {
	return u.store.GetHistory(ctx, serviceID)
}

func (u *DocumentUseCase) ListAllQuotes(ctx context.Context) ([]entities.QuoteListing, error) {
	if u.cache != nil {
		cached, ok, err := u.cache.Get(ctx)
		if err != nil {
			u.log.Warn("quotes cache read failed", "error", err)
		} else if ok {
			return cached, nil
		}
	}

	quotes, err := u.store.ListAllQuotes(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, quotes); err != nil {
			u.log.Warn("quotes cache write failed", "error", err)
		}
	}
	return quotes, nil
}

func (u *DocumentUseCase) PreviewConversion(ctx context.Context, serviceID string, kind entities.DocumentKind, number string) (ConversionPreview, error) {
	if !kind.Valid() {
		return ConversionPreview{}, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return ConversionPreview{}, ErrInvalidDocumentNumber
	}

	original, found, err := u.store.FindDocument(ctx, serviceID, kind, number)
	if err != nil {
		return ConversionPreview{}, err
	}
	if !found {
		return ConversionPreview{}, ErrDocumentNotFound
	}

	draft, err := converter.NextDraft(original)
	if err != nil {
		return ConversionPreview{}, err
	}
	return ConversionPreview{Draft: draft, Original: original}, nil
}

func (u *DocumentUseCase) upload(ctx context.Context, serviceID string, file *FileUpload) (string, error) {
	if u.uploader == nil {
		return "", ErrUploaderNotConfigured
	}
	if file.Content == nil {
		return "", ErrEmptyUpload
	}
	url, err := u.uploader.Upload(ctx, serviceID, file.Filename, file.Content)
	if err != nil {
		return "", fmt.Errorf("upload pdf: %w", err)
	}
	return url, nil
}

// discardUpload removes a PDF whose document write failed.
func (u *DocumentUseCase) discardUpload(ctx context.Context, serviceID, url string) {
	if url == "" || u.uploader == nil {
		return
	}
	if err := u.uploader.Remove(ctx, url); err != nil {
		u.log.Warn("orphaned upload not removed", "service_id", serviceID, "url", url, "error", err)
	}
}

func (u *DocumentUseCase) appendHistory(ctx context.Context, serviceID string, event entities.HistoryEvent) error {
	if _, err := u.store.AppendHistoryEvent(ctx, serviceID, event); err != nil {
		return err
	}
	if u.publisher != nil {
		if err := u.publisher.PublishHistoryEvent(ctx, serviceID, event); err != nil {
			u.log.Warn("history event publish failed", "service_id", serviceID, "type", event.Type, "error", err)
		}
	}
	return nil
}

func (u *DocumentUseCase) invalidateQuotes(ctx context.Context, kind entities.DocumentKind) {
	if u.cache == nil || kind != entities.DocumentKindCotizacion {
		return
	}
	if err := u.cache.Invalidate(ctx); err != nil {
		u.log.Warn("quotes cache invalidation failed", "error", err)
	}
}

func actorOrNil(user string, fallback *string) *string {
	if v := strings.TrimSpace(user); v != "" {
		return &v
	}
	return fallback
}

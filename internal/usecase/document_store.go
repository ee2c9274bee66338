package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound        = errors.New("service not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrInvalidDocumentNumber  = errors.New("invalid document number")
	ErrConcurrentModification = errors.New("service record was modified concurrently")
	ErrKindChanged            = errors.New("document kind cannot change")
)

const DefaultStoreMaxAttempts = 5

// DocumentStore implements IDocumentStore over a service record repository.
//
// Each write reads the record, applies the change to the whole array and saves it
// back only if the record version is unchanged. On a version conflict the cycle
// restarts from a fresh read, up to maxAttempts times, so concurrent writers to the
// same service never overwrite each other.

type DocumentStore struct {
	repo        interfaces.IServiceRecordRepository
	maxAttempts int
	log         *logger.Logger
}

var _ interfaces.IDocumentStore = (*DocumentStore)(nil)

func NewDocumentStore(repo interfaces.IServiceRecordRepository, maxAttempts int, log *logger.Logger) *DocumentStore {
	if maxAttempts <= 0 {
		maxAttempts = DefaultStoreMaxAttempts
	}
	return &DocumentStore{
		repo:        repo,
		maxAttempts: maxAttempts,
		log:         log.With("component", "DocumentStore"),
	}
}

func (s *DocumentStore) GetDocuments(ctx context.Context, serviceID string) ([]entities.Document, error) {
	rec, err := s.load(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return rec.Documents, nil
}

func (s *DocumentStore) AppendDocument(ctx context.Context, serviceID string, doc entities.Document) ([]entities.Document, error) {
	return s.mutateDocuments(ctx, serviceID, func(docs []entities.Document) ([]entities.Document, error) {
		return append(docs, doc), nil
	})
}

func (s *DocumentStore) AppendDocumentWith(
	ctx context.Context,
	serviceID string,
	build func(existing []entities.Document) (entities.Document, error),
) (entities.Document, error) {
	var created entities.Document
	_, err := s.mutateDocuments(ctx, serviceID, func(docs []entities.Document) ([]entities.Document, error) {
		doc, err := build(docs)
		if err != nil {
			return nil, err
		}
		created = doc
		return append(docs, doc), nil
	})
	if err != nil {
		return entities.Document{}, err
	}
	return created, nil
}

func (s *DocumentStore) FindDocument(ctx context.Context, serviceID string, kind entities.DocumentKind, number string) (entities.Document, bool, error) {
	docs, err := s.GetDocuments(ctx, serviceID)
	if err != nil {
		return entities.Document{}, false, err
	}
	for _, d := range docs {
		if d.Kind == kind && d.HasNumber(number) {
			return d, true, nil
		}
	}
	return entities.Document{}, false, nil
}

func (s *DocumentStore) FindDocumentsByKind(ctx context.Context, serviceID string, kind entities.DocumentKind) ([]entities.Document, error) {
	docs, err := s.GetDocuments(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	out := []entities.Document{}
	for _, d := range docs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *DocumentStore) UpdateDocument(ctx context.Context, serviceID string, number string, patch entities.Fields) (entities.Document, error) {
	return s.UpdateDocumentWith(ctx, serviceID, number, func(current entities.Document) (entities.Document, error) {
		return entities.MergeDocument(current, patch)
	})
}

func (s *DocumentStore) UpdateDocumentWith(
	ctx context.Context,
	serviceID string,
	number string,
	mutate func(current entities.Document) (entities.Document, error),
) (entities.Document, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Document{}, ErrInvalidDocumentNumber
	}

	var updated entities.Document
	_, err := s.mutateDocuments(ctx, serviceID, func(docs []entities.Document) ([]entities.Document, error) {
		idx := -1
		for i, d := range docs {
			if d.HasNumber(number) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrDocumentNotFound
		}
		next, err := mutate(docs[idx])
		if err != nil {
			return nil, err
		}
		if next.Kind != docs[idx].Kind {
			return nil, ErrKindChanged
		}
		docs[idx] = next
		updated = next
		return docs, nil
	})
	if err != nil {
		return entities.Document{}, err
	}
	return updated, nil
}

func (s *DocumentStore) RemoveDocument(ctx context.Context, serviceID string, number string) (int, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return 0, ErrInvalidDocumentNumber
	}

	removed := 0
	_, err := s.mutateDocuments(ctx, serviceID, func(docs []entities.Document) ([]entities.Document, error) {
		kept := make([]entities.Document, 0, len(docs))
		for _, d := range docs {
			if !d.HasNumber(number) {
				kept = append(kept, d)
			}
		}
		if len(kept) == len(docs) {
			return nil, ErrDocumentNotFound
		}
		removed = len(docs) - len(kept)
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *DocumentStore) GetHistory(ctx context.Context, serviceID string) ([]entities.HistoryEvent, error) {
	rec, err := s.load(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	return rec.History, nil
}

func (s *DocumentStore) AppendHistoryEvent(ctx context.Context, serviceID string, event entities.HistoryEvent) ([]entities.HistoryEvent, error) {
	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	var out []entities.HistoryEvent
	err := s.compareAndSwap(ctx, serviceID, func(rec entities.ServiceRecord) error {
		next := append(rec.History, event)
		if err := s.repo.SaveHistory(ctx, rec.ID, next, rec.Version); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllQuotes flattens every service's cotizaciones, newest date first, then
// highest number first. Missing dates and numbers sort last. Each service is read
// independently; the result is not one consistent snapshot.
func (s *DocumentStore) ListAllQuotes(ctx context.Context) ([]entities.QuoteListing, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := []entities.QuoteListing{}
	for _, rec := range records {
		for _, d := range rec.Documents {
			if d.Kind != entities.DocumentKindCotizacion {
				continue
			}
			out = append(out, entities.QuoteListing{ServiceID: rec.ID, ServiceName: rec.Name, Quote: d})
		}
	}
	sortQuoteListings(out)
	return out, nil
}

func sortQuoteListings(quotes []entities.QuoteListing) {
	sort.SliceStable(quotes, func(i, j int) bool {
		a, b := quotes[i].Quote, quotes[j].Quote
		if a.Date != b.Date {
			if a.Date == "" {
				return false
			}
			if b.Date == "" {
				return true
			}
			return a.Date > b.Date
		}
		if a.Number == nil || b.Number == nil {
			return a.Number != nil && b.Number == nil
		}
		return *a.Number > *b.Number
	})
}

func (s *DocumentStore) load(ctx context.Context, serviceID string) (entities.ServiceRecord, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.ServiceRecord{}, ErrInvalidServiceID
	}

	rec, err := s.repo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("load service %s: %w", serviceID, err)
	}
	if rec.ID == "" {
		return entities.ServiceRecord{}, ErrServiceNotFound
	}
	if rec.Documents == nil {
		rec.Documents = []entities.Document{}
	}
	if rec.History == nil {
		rec.History = []entities.HistoryEvent{}
	}
	return rec, nil
}

func (s *DocumentStore) mutateDocuments(
	ctx context.Context,
	serviceID string,
	change func(docs []entities.Document) ([]entities.Document, error),
) ([]entities.Document, error) {
	var out []entities.Document
	err := s.compareAndSwap(ctx, serviceID, func(rec entities.ServiceRecord) error {
		next, err := change(rec.Documents)
		if err != nil {
			return err
		}
		if err := s.repo.SaveDocuments(ctx, rec.ID, next, rec.Version); err != nil {
			return err
		}
		out = next
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// compareAndSwap runs one read-modify-write cycle per attempt until write
// succeeds or fails with anything other than a version conflict.
func (s *DocumentStore) compareAndSwap(ctx context.Context, serviceID string, write func(rec entities.ServiceRecord) error) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		rec, err := s.load(ctx, serviceID)
		if err != nil {
			return err
		}

		err = write(rec)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, interfaces.ErrVersionConflict):
			s.log.Warn("version conflict, retrying", "service_id", rec.ID, "version", rec.Version, "attempt", attempt)
			continue
		case errors.Is(err, interfaces.ErrServiceRecordNotFound):
			return ErrServiceNotFound
		default:
			return err
		}
	}
	s.log.Error("giving up after repeated version conflicts", "service_id", serviceID, "attempts", s.maxAttempts)
	return ErrConcurrentModification
}

package interfaces

import (
	"context"
	"service_documents/internal/domain/entities"
)

// IDocumentStore is CRUD over the documents and history arrays of one service
// record. It never validates documents.
//
// Every write is a read-modify-write of the whole array guarded by the record
// version; the *With variants run their callback inside that cycle, so the
// callback may be invoked more than once and must not have side effects.

type IDocumentStore interface {
	GetDocuments(ctx context.Context, serviceID string) ([]entities.Document, error)
	AppendDocument(ctx context.Context, serviceID string, doc entities.Document) ([]entities.Document, error)
	AppendDocumentWith(ctx context.Context, serviceID string, build func(existing []entities.Document) (entities.Document, error)) (entities.Document, error)
	FindDocument(ctx context.Context, serviceID string, kind entities.DocumentKind, number string) (entities.Document, bool, error)
	FindDocumentsByKind(ctx context.Context, serviceID string, kind entities.DocumentKind) ([]entities.Document, error)
	UpdateDocument(ctx context.Context, serviceID string, number string, patch entities.Fields) (entities.Document, error)
	UpdateDocumentWith(ctx context.Context, serviceID string, number string, mutate func(current entities.Document) (entities.Document, error)) (entities.Document, error)
	RemoveDocument(ctx context.Context, serviceID string, number string) (int, error)

	GetHistory(ctx context.Context, serviceID string) ([]entities.HistoryEvent, error)
	AppendHistoryEvent(ctx context.Context, serviceID string, event entities.HistoryEvent) ([]entities.HistoryEvent, error)

	ListAllQuotes(ctx context.Context) ([]entities.QuoteListing, error)
}

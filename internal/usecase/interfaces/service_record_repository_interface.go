package interfaces

import (
	"context"
	"errors"
	"service_documents/internal/domain/entities"
)

var (
	// ErrVersionConflict means the record changed between read and write.
	ErrVersionConflict = errors.New("service record version conflict")
	// ErrServiceRecordNotFound is returned by writes against a missing record.
	ErrServiceRecordNotFound = errors.New("service record not found")
)

// IServiceRecordRepository is the only adapter over the persisted service rows.
//
// The documents and history columns are whole JSON arrays. Writers must pass the
// version they read; a write whose version no longer matches fails with
// ErrVersionConflict and nothing is persisted.
//
// GetByID returns a zero record (empty ID) when the row does not exist.
// ListAll tolerates a malformed documents column by returning it as empty.

type IServiceRecordRepository interface {
	GetByID(ctx context.Context, id string) (entities.ServiceRecord, error)
	ListAll(ctx context.Context) ([]entities.ServiceRecord, error)
	SaveDocuments(ctx context.Context, id string, docs []entities.Document, expectedVersion int64) error
	SaveHistory(ctx context.Context, id string, history []entities.HistoryEvent, expectedVersion int64) error
}

package interfaces

import (
	"context"
	"io"
	"service_documents/internal/domain/entities"
)

// IFileUploader stores a document PDF and returns the URL to keep on pdfUrl.
// The document flow never reads the bytes itself. Remove takes a URL returned
// by Upload.
type IFileUploader interface {
	Upload(ctx context.Context, serviceID string, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, url string) error
}

// IHistoryPublisher fans out history events to other services. Delivery is
// best effort; a failed publish never fails the operation that produced it.
type IHistoryPublisher interface {
	PublishHistoryEvent(ctx context.Context, serviceID string, event entities.HistoryEvent) error
}

// IQuoteListCache caches the cross-service quotes listing.
// Get reports false on a miss.
type IQuoteListCache interface {
	Get(ctx context.Context) ([]entities.QuoteListing, bool, error)
	Set(ctx context.Context, quotes []entities.QuoteListing) error
	Invalidate(ctx context.Context) error
}

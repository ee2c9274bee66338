package entities

import (
	"bytes"
	"encoding/json"
	"time"
)

// ServiceRecord is the parent "service" row that owns documents and history.
//
// Storage model:
//   - documents: JSON array of Document, insertion order
//   - history: JSON array of HistoryEvent, append-only
//   - version: optimistic concurrency stamp, bumped on every write
//
// Both arrays default to empty and are never null at rest.
type ServiceRecord struct {
	ID        string
	Name      string
	Documents []Document
	History   []HistoryEvent
	Version   int64
}

// HistoryEvent is an immutable audit entry appended to a service record.
type HistoryEvent struct {
	Type        string         `json:"type"`
	Description string         `json:"description"`
	User        *string        `json:"user"`
	Metadata    map[string]any `json:"metadata"`
	Timestamp   time.Time      `json:"timestamp"`
}

func NewHistoryEvent(eventType, description string, user *string, metadata map[string]any, at time.Time) HistoryEvent {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return HistoryEvent{
		Type:        eventType,
		Description: description,
		User:        user,
		Metadata:    metadata,
		Timestamp:   at.UTC(),
	}
}

// QuoteListing is a cotizacion annotated with the service that owns it.
type QuoteListing struct {
	ServiceID   string
	ServiceName string
	Quote       Document
}

func (q QuoteListing) MarshalJSON() ([]byte, error) {
	fields, err := q.Quote.Fields()
	if err != nil {
		return nil, err
	}
	if err := fields.Set("serviceId", q.ServiceID); err != nil {
		return nil, err
	}
	if err := fields.Set("serviceName", q.ServiceName); err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// DecodeDocuments reads a documents column. Absent or null yields an empty slice.
func DecodeDocuments(raw []byte) ([]Document, error) {
	docs := []Document{}
	if isNullJSON(raw) {
		return docs, nil
	}
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []Document{}
	}
	return docs, nil
}

func EncodeDocuments(docs []Document) ([]byte, error) {
	if docs == nil {
		docs = []Document{}
	}
	return json.Marshal(docs)
}

// DecodeHistory reads a history column. Absent or null yields an empty slice.
func DecodeHistory(raw []byte) ([]HistoryEvent, error) {
	events := []HistoryEvent{}
	if isNullJSON(raw) {
		return events, nil
	}
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []HistoryEvent{}
	}
	return events, nil
}

func EncodeHistory(events []HistoryEvent) ([]byte, error) {
	if events == nil {
		events = []HistoryEvent{}
	}
	return json.Marshal(events)
}

func isNullJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

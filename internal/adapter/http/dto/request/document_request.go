package request

import (
	"errors"
	"strings"

	"service_documents/internal/domain/entities"
)

// Multipart form fields of create and update requests.
const (
	FormFieldData = "data"
	FormFieldPDF  = "pdf"
)

var (
	ErrEmptyDocumentBody   = errors.New("document body is empty")
	ErrInvalidDocumentBody = errors.New("document body must be a json object")
)

// DecodeDocumentFields reads a document body: the raw JSON request body, or the
// `data` field of a multipart request.
func DecodeDocumentFields(raw string) (entities.Fields, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyDocumentBody
	}
	fields, err := entities.ParseFields([]byte(raw))
	if err != nil {
		return nil, ErrInvalidDocumentBody
	}
	return fields, nil
}

// ResolveUser returns the acting user from the X-User header, or "" when absent.
func ResolveUser(header string) string {
	return strings.TrimSpace(header)
}

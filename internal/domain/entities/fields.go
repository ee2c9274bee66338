package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrPatchNotObject = errors.New("patch must be a json object")
	ErrMalformedPatch = errors.New("patch field has the wrong type")
)

// Fields is a flat JSON object keyed by field name. It is the shape callers send
// when creating or patching a document and the shape drafts are merged in.
type Fields map[string]json.RawMessage

// ParseFields decodes a JSON object. Empty input yields an empty object.
func ParseFields(raw []byte) (Fields, error) {
	out := Fields{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, ErrPatchNotObject
	}
	if out == nil {
		return Fields{}, nil
	}
	return out, nil
}

// FieldsOf converts any JSON-marshalable struct into Fields.
func FieldsOf(v any) (Fields, error) {
	out := Fields{}
	if err := out.mergeStruct(v); err != nil {
		return nil, err
	}
	return out, nil
}

// Overlay returns a copy of f with every key of top written over it.
func (f Fields) Overlay(top Fields) Fields {
	out := make(Fields, len(f)+len(top))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}

// Without returns a copy of f without the given keys.
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// String reads a string field. Missing, null or non-string values report false.
func (f Fields) String(key string) (string, bool) {
	raw, ok := f[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Has reports whether key is present with a non-null value.
func (f Fields) Has(key string) bool {
	raw, ok := f[key]
	return ok && string(raw) != "null"
}

func (f Fields) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f[key] = raw
	return nil
}

func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	return keys
}

func (f Fields) mergeStruct(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	for k, val := range m {
		f[k] = val
	}
	return nil
}

// MergeDocument shallow-merges patch onto doc, the way {...doc, ...patch} would.
//
// The kind key is ignored: a document never changes kind.
func MergeDocument(doc Document, patch Fields) (Document, error) {
	base, err := doc.Fields()
	if err != nil {
		return Document{}, err
	}
	merged := base.Overlay(patch.Without("kind"))
	raw, err := json.Marshal(merged)
	if err != nil {
		return Document{}, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedPatch, err)
	}
	return out, nil
}

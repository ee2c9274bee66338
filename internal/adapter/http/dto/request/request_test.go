package request

import (
	"errors"
	"testing"
)

func TestDecodeDocumentFields(t *testing.T) {
	fields, err := DecodeDocumentFields(`{"client":{"name":"Acme"},"kind":"reporte"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fields.Has("client") || !fields.Has("kind") {
		t.Fatalf("unexpected fields: %v", fields.Keys())
	}

	if _, err := DecodeDocumentFields("  "); !errors.Is(err, ErrEmptyDocumentBody) {
		t.Fatalf("expected ErrEmptyDocumentBody, got %v", err)
	}
	for _, raw := range []string{"[1,2]", "{", `"text"`} {
		if _, err := DecodeDocumentFields(raw); !errors.Is(err, ErrInvalidDocumentBody) {
			t.Fatalf("%s: expected ErrInvalidDocumentBody, got %v", raw, err)
		}
	}
}

func TestResolveUser(t *testing.T) {
	if got := ResolveUser("  ana "); got != "ana" {
		t.Fatalf("expected ana, got %q", got)
	}
	if got := ResolveUser(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestResolvePaymentPayload(t *testing.T) {
	got, err := ResolvePaymentPayload(nil)
	if err != nil || string(got) != "{}" {
		t.Fatalf("expected {}, got %s (%v)", got, err)
	}

	got, err = ResolvePaymentPayload([]byte(`{"mp_payload":{"payment_method_id":"pix"}}`))
	if err != nil || string(got) != `{"payment_method_id":"pix"}` {
		t.Fatalf("unexpected unwrap: %s (%v)", got, err)
	}

	got, err = ResolvePaymentPayload([]byte(`{"payment_method_id":"pix"}`))
	if err != nil || string(got) != `{"payment_method_id":"pix"}` {
		t.Fatalf("unexpected passthrough: %s (%v)", got, err)
	}

	if _, err := ResolvePaymentPayload([]byte(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected error for null mp_payload")
	}
	if _, err := ResolvePaymentPayload([]byte(`{`)); !errors.Is(err, ErrInvalidPaymentBody) {
		t.Fatalf("expected ErrInvalidPaymentBody, got %v", err)
	}
}

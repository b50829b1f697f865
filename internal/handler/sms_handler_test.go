package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/curious/backend/internal/service"
)

func TestSMSHandlerInbound_FormParameters(t *testing.T) {
	var gotFrom, gotBody string
	inbound := &mockInboundService{
		HandleFunc: func(ctx context.Context, fromRaw, body string) (service.Outcome, error) {
			gotFrom = fromRaw
			gotBody = body
			return service.OutcomeAnswerSaved, nil
		},
	}
	h := NewSMSHandler(inbound)

	form := url.Values{}
	form.Set("From", "+1 (555) 123-4567")
	form.Set("Body", "pretty good actually")
	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Inbound(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotFrom != "+1 (555) 123-4567" {
		t.Errorf("from = %q", gotFrom)
	}
	if gotBody != "pretty good actually" {
		t.Errorf("body = %q", gotBody)
	}
	if got := rec.Body.String(); got != service.OutcomeAnswerSaved.String() {
		t.Errorf("response body = %q, want %q", got, service.OutcomeAnswerSaved)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
}

func TestSMSHandlerInbound_QueryParameters(t *testing.T) {
	var gotFrom string
	inbound := &mockInboundService{
		HandleFunc: func(ctx context.Context, fromRaw, body string) (service.Outcome, error) {
			gotFrom = fromRaw
			return service.OutcomeWelcomed, nil
		},
	}
	h := NewSMSHandler(inbound)

	req := httptest.NewRequest(http.MethodGet, "/sms?From=5551234567&Body=hi", nil)
	rec := httptest.NewRecorder()

	h.Inbound(rec, req)

	if gotFrom != "5551234567" {
		t.Errorf("from = %q", gotFrom)
	}
	if got := rec.Body.String(); got != service.OutcomeWelcomed.String() {
		t.Errorf("response body = %q", got)
	}
}

// A store failure must not surface as a non-2xx: the provider would retry the
// message and we would process it twice.
func TestSMSHandlerInbound_ErrorStill200(t *testing.T) {
	inbound := &mockInboundService{
		HandleFunc: func(ctx context.Context, fromRaw, body string) (service.Outcome, error) {
			return service.OutcomeIgnored, errors.New("db down")
		},
	}
	h := NewSMSHandler(inbound)

	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader("From=5551234567&Body=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Inbound(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on error", rec.Code)
	}
	if got := rec.Body.String(); got != service.OutcomeIgnored.String() {
		t.Errorf("response body = %q", got)
	}
}

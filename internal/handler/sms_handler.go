package handler

import (
	"log/slog"
	"net/http"

	"github.com/curious/backend/internal/service"
)

// SMSHandler receives inbound-message webhooks from the SMS provider.
type SMSHandler struct {
	inbound service.InboundService
}

// NewSMSHandler creates an SMSHandler with the given router.
func NewSMSHandler(inbound service.InboundService) *SMSHandler {
	return &SMSHandler{inbound: inbound}
}

// Inbound handles POST/GET /sms. The provider supplies the sender number as
// "From" and the message text as "Body" (query or form parameters). The
// response is the router outcome as plain text, always 200: a non-2xx would
// make the provider retry a message we already processed.
func (h *SMSHandler) Inbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(service.OutcomeIgnored.String()))
		return
	}
	from := r.Form.Get("From")
	body := r.Form.Get("Body")

	outcome, err := h.inbound.Handle(r.Context(), from, body)
	if err != nil {
		slog.Error("inbound processing failed", "from", from, "outcome", outcome, "error", err)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(outcome.String()))
}

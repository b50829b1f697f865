package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/curious/backend/internal/model"
	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/internal/service"
	"github.com/curious/backend/pkg/auth"
)

// ContactHandler handles the logged-in account's contact roster.
type ContactHandler struct {
	accountService service.AccountService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(accountService service.AccountService) *ContactHandler {
	return &ContactHandler{accountService: accountService}
}

type listContactsResponse struct {
	Contacts []*model.Contact `json:"contacts"`
}

// List handles GET /api/me/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contacts, err := h.accountService.ListContacts(r.Context(), accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}
	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, listContactsResponse{Contacts: contacts})
}

type importRequest struct {
	PhoneNumbers []string `json:"phone_numbers"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

// Import handles POST /api/me/contacts. Accepts a list of raw phone numbers;
// bad entries are skipped, the response reports how many linked.
func (h *ContactHandler) Import(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if len(req.PhoneNumbers) == 0 {
		writeError(w, http.StatusBadRequest, "phone_numbers_required")
		return
	}

	count, err := h.accountService.ImportContacts(r.Context(), accountID, req.PhoneNumbers)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "unknown_account")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "import_failed")
		return
	}
	writeJSON(w, http.StatusCreated, importResponse{Imported: count})
}

// Remove handles DELETE /api/me/contacts/{id}. Unlinks only; the contact
// record survives for other accounts.
func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	contactID := r.PathValue("id")
	if contactID == "" {
		writeError(w, http.StatusBadRequest, "contact_id_required")
		return
	}

	if err := h.accountService.RemoveContact(r.Context(), accountID, contactID); err != nil {
		writeError(w, http.StatusInternalServerError, "remove_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

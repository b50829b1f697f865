package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/curious/backend/internal/repository"
	"github.com/curious/backend/internal/service"
	"github.com/curious/backend/pkg/auth"
)

// AccountHandler handles registration, login and account projections.
type AccountHandler struct {
	accountService  service.AccountService
	questionService service.QuestionService
	sessionSecret   []byte
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accountService service.AccountService, questionService service.QuestionService, sessionSecret []byte) *AccountHandler {
	return &AccountHandler{
		accountService:  accountService,
		questionService: questionService,
		sessionSecret:   sessionSecret,
	}
}

type registerRequest struct {
	PhoneNumber string `json:"phone_number"`
	Nickname    string `json:"nickname"`
}

// Register handles POST /api/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	account, err := h.accountService.Register(r.Context(), req.PhoneNumber, req.Nickname)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrDuplicateNickname):
		writeError(w, http.StatusConflict, "nickname_taken")
		return
	case errors.Is(err, service.ErrDuplicateSlug):
		writeError(w, http.StatusConflict, "slug_taken")
		return
	case errors.Is(err, service.ErrDuplicatePhone):
		writeError(w, http.StatusConflict, "phone_taken")
		return
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_input")
		return
	default:
		writeError(w, http.StatusInternalServerError, "register_failed")
		return
	}

	h.setSessionCookie(w, account.ID)
	writeJSON(w, http.StatusCreated, account)
}

type loginRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// Login handles POST /api/login: phone-number lookup, session cookie on hit.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	account, err := h.accountService.Login(r.Context(), req.PhoneNumber)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "unknown_phone")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	h.setSessionCookie(w, account.ID)
	writeJSON(w, http.StatusOK, account)
}

// Logout handles POST /api/logout.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Me handles GET /api/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	accountID, ok := auth.AccountIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	account, err := h.accountService.Get(r.Context(), accountID)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "unknown_account")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "me_failed")
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// orgResponse is the public landing-page projection of an account.
type orgResponse struct {
	Nickname      string `json:"nickname"`
	Slug          string `json:"slug"`
	QuestionCount int    `json:"question_count"`
}

// Org handles GET /api/orgs/{slug}, the public landing page projection.
func (h *AccountHandler) Org(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	account, err := h.accountService.FindBySlug(r.Context(), slug)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "org_failed")
		return
	}

	count, err := h.questionService.CountByAccount(r.Context(), account.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "org_failed")
		return
	}
	writeJSON(w, http.StatusOK, orgResponse{
		Nickname:      account.Nickname,
		Slug:          account.Slug,
		QuestionCount: count,
	})
}

func (h *AccountHandler) setSessionCookie(w http.ResponseWriter, accountID string) {
	token := auth.CreateSessionToken(accountID, h.sessionSecret)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   os.Getenv("ENV") == "production",
	})
}

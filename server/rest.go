package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/proposalfast/proposalfast/pkg/domain"
	"github.com/proposalfast/proposalfast/pkg/notify"
	"github.com/proposalfast/proposalfast/pkg/repository"
)

const (
	defaultDraftsLimit = 50
	maxDraftsLimit     = 500
)

// statusHandler returns server status with pipeline counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"stats":   s.generator.Stats(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// generateHandler generates a contract for the authenticated user
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.generator.Generate(r.Context(), userFromContext(r.Context()), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			renderJSON(w, r, http.StatusBadRequest, map[string]any{"error": verr.Error(), "fields": verr.Fields})
			return
		}
		lgr.Printf("[ERROR] failed to generate contract: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, res)
}

// listDraftsHandler returns the user's drafts, newest first
func (s *Server) listDraftsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultDraftsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = min(l, maxDraftsLimit)
	}

	drafts, err := s.db.ListDrafts(r.Context(), userFromContext(r.Context()), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list drafts: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, drafts)
}

// getDraftHandler returns a single draft of the user
func (s *Server) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	draft, err := s.db.GetDraft(r.Context(), userFromContext(r.Context()), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, fmt.Errorf("draft not found"), http.StatusNotFound)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to get draft: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, draft)
}

// listMemoryHandler returns everything learned about the user's clients
func (s *Server) listMemoryHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.db.ListPreferences(r.Context(), userFromContext(r.Context()))
	if err != nil {
		lgr.Printf("[ERROR] failed to list preferences: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, prefs)
}

// deleteMemoryHandler forgets a client, forgetting an unknown client is not an error
func (s *Server) deleteMemoryHandler(w http.ResponseWriter, r *http.Request) {
	client := r.PathValue("client")
	if client == "" {
		renderError(w, r, fmt.Errorf("client name is required"), http.StatusBadRequest)
		return
	}

	userID := userFromContext(r.Context())
	if err := s.db.DeletePreference(r.Context(), userID, client); err != nil {
		lgr.Printf("[ERROR] failed to delete preference: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	lgr.Printf("[INFO] user %s deleted memory for client %q", userID, client)
	w.WriteHeader(http.StatusNoContent)
}

// listWebhooksHandler returns the user's webhooks
func (s *Server) listWebhooksHandler(w http.ResponseWriter, r *http.Request) {
	hooks, err := s.db.ListWebhooks(r.Context(), userFromContext(r.Context()), false)
	if err != nil {
		lgr.Printf("[ERROR] failed to list webhooks: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, hooks)
}

// createWebhookHandler registers a webhook, enabled unless told otherwise
func (s *Server) createWebhookHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind    domain.WebhookKind `json:"kind"`
		URL     string             `json:"url"`
		Enabled *bool              `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if !req.Kind.Valid() {
		renderError(w, r, fmt.Errorf("unsupported webhook kind %q", req.Kind), http.StatusBadRequest)
		return
	}
	if err := notify.CheckURL(req.URL, s.hooksPriv); err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	hook := &domain.Webhook{
		UserID:  userFromContext(r.Context()),
		Kind:    req.Kind,
		URL:     req.URL,
		Enabled: req.Enabled == nil || *req.Enabled,
	}
	err := s.db.CreateWebhook(r.Context(), hook)
	if errors.Is(err, repository.ErrDuplicate) {
		renderError(w, r, fmt.Errorf("webhook already registered"), http.StatusConflict)
		return
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to create webhook: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, hook)
}

// deleteWebhookHandler removes a webhook of the user
func (s *Server) deleteWebhookHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid webhook ID"), http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteWebhook(r.Context(), userFromContext(r.Context()), id); err != nil {
		lgr.Printf("[ERROR] failed to delete webhook: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

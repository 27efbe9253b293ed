package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"cuptrace/internal/core/domain"
	"cuptrace/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the brand and campaign services to execute business logic
// and a logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	brands    port.BrandUseCase
	campaigns port.CampaignUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Campaign routes
// require a bearer token; /brands, /token and the health endpoint do not.
func NewHandler(brands port.BrandUseCase, campaigns port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{brands: brands, campaigns: campaigns, logger: logger}
	r := chi.NewRouter()

	r.Get("/", h.handleHealth)
	r.Post("/brands", h.handleBrandCreate)
	r.Post("/token", h.handleToken)

	r.Group(func(r chi.Router) {
		r.Use(h.requireBrand)
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignCreate)
			r.Get("/", h.handleCampaignList)
			r.Route("/{campaignID}", func(r chi.Router) {
				r.Get("/", h.handleCampaignSummary)
				r.Post("/manufacture", h.handleManufacture)
				r.Post("/distribute", h.handleDistribute)
				r.Post("/daily-activity", h.handleDailyActivityUpsert)
				r.Get("/daily-activities", h.handleDailyActivityList)
			})
		})
		r.Get("/proofs/{txid}", h.handleProofLookup)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type ctxKey int

const brandKey ctxKey = 0

// requireBrand resolves the Authorization bearer token to a brand and stores
// it on the request context. Requests without a valid token get HTTP 401.
func (h *Handler) requireBrand(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		brand, err := h.brands.Authenticate(r.Context(), token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), brandKey, brand)))
	})
}

// brandFrom returns the authenticated brand placed on the context by
// requireBrand.
func brandFrom(r *http.Request) *domain.Brand {
	return r.Context().Value(brandKey).(*domain.Brand)
}

// campaignID parses the {campaignID} path parameter.
func campaignID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
}

// writeJSON encodes v with the JSON content type. Encoding errors are logged
// since the status line is already gone.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes. Anything unrecognised is an
// internal error; the detail is logged, not leaked.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "Campaign not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidCredentials):
		http.Error(w, "Incorrect email or password", http.StatusBadRequest)
	case errors.Is(err, port.ErrEmailTaken):
		http.Error(w, "Email already registered", http.StatusConflict)
	default:
		h.logger.Error("request failed", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

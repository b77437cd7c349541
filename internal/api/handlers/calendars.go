package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/pkg/logger"
)

// CalendarHandler handles calendar management endpoints. The registry is
// the runtime source of truth; the repository, when configured, persists
// registrations across restarts.
type CalendarHandler struct {
	registry *calendar.Registry
	repo     *calendar.Repository // nil when no database is configured
	logger   *logger.Logger
}

// NewCalendarHandler creates a calendar handler. repo may be nil.
func NewCalendarHandler(reg *calendar.Registry, repo *calendar.Repository, log *logger.Logger) *CalendarHandler {
	return &CalendarHandler{registry: reg, repo: repo, logger: log}
}

// List returns all registered calendar ids in registration order.
// GET /api/calendars
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"calendars": h.registry.List(),
	})
}

// Get returns one calendar configuration.
// GET /api/calendars/{id}
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	cfg, err := h.registry.Get(id)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// Create registers a calendar configuration, replacing any previous one
// with the same id, and persists it when a repository is configured.
// POST /api/calendars
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cfg calendar.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.registry.Register(&cfg); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	if h.repo != nil {
		if err := h.repo.Save(r.Context(), &cfg); err != nil {
			h.logger.WithError(err).WithField("calendar", cfg.ID).Error("Failed to persist calendar")
			respondError(w, http.StatusInternalServerError, "calendar registered but not persisted")
			return
		}
	}

	h.logger.WithField("calendar", cfg.ID).Info("Calendar registered")
	respondJSON(w, http.StatusCreated, map[string]string{"id": cfg.ID})
}

// Diagnostics re-validates a calendar and reports its ambiguous months.
// GET /api/calendars/{id}/diagnostics
func (h *CalendarHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	diags, err := h.registry.Validate(id)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	if diags == nil {
		diags = []calendar.Diagnostic{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"calendar":    id,
		"diagnostics": diags,
	})
}

// SetMonthMapping adds or overwrites one explicit month resolution entry.
// PUT /api/calendars/{id}/month-map
func (h *CalendarHandler) SetMonthMapping(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Month      int    `json:"month"`
		PeriodName string `json:"period_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.registry.SetMonthMapping(id, req.Month, req.PeriodName); err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	if h.repo != nil {
		cfg, err := h.registry.Get(id)
		if err == nil {
			if err := h.repo.Save(r.Context(), cfg); err != nil {
				h.logger.WithError(err).WithField("calendar", id).Error("Failed to persist month mapping")
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"calendar":    id,
		"month":       req.Month,
		"period_name": req.PeriodName,
	})
}

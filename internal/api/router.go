package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/acadterm/acadterm/internal/api/handlers"
	"github.com/acadterm/acadterm/pkg/config"
	"github.com/acadterm/acadterm/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	cfg *config.Config,
	calendarHandler *handlers.CalendarHandler,
	periodHandler *handlers.PeriodHandler,
	log *logger.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	// Calendar endpoints
	api.HandleFunc("/calendars", calendarHandler.List).Methods("GET")
	api.HandleFunc("/calendars", calendarHandler.Create).Methods("POST")
	api.HandleFunc("/calendars/{id}", calendarHandler.Get).Methods("GET")
	api.HandleFunc("/calendars/{id}/diagnostics", calendarHandler.Diagnostics).Methods("GET")
	api.HandleFunc("/calendars/{id}/month-map", calendarHandler.SetMonthMapping).Methods("PUT")

	// Period endpoints
	api.HandleFunc("/parse", periodHandler.Parse).Methods("POST")
	api.HandleFunc("/periods/shift", periodHandler.Shift).Methods("POST")
	api.HandleFunc("/periods/sequence", periodHandler.Sequence).Methods("GET")

	// Apply middleware
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(rateLimitMiddleware(limiter))

	return r
}

// healthCheckHandler returns server health status.
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "acadterm-api",
	})
}

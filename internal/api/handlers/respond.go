package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/period"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// statusForError maps engine errors onto HTTP statuses: missing calendars
// are 404, invalid configurations 422, everything else is a bad request.
func statusForError(err error) int {
	var (
		unknownCal    *calendar.UnknownCalendarError
		invalidConfig *calendar.InvalidConfigError
	)
	switch {
	case errors.As(err, &unknownCal):
		return http.StatusNotFound
	case errors.As(err, &invalidConfig):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// periodJSON is the wire representation of a period instance.
type periodJSON struct {
	Name       string            `json:"name"`
	Code       string            `json:"code"`
	Year       int               `json:"year"`
	Term       int               `json:"term"`
	AY         string            `json:"ay"`
	AYStart    int               `json:"ay_start"`
	AYEnd      int               `json:"ay_end"`
	StartDate  string            `json:"start_date"`
	CalendarID string            `json:"calendar_id"`
	Formats    map[string]string `json:"formats"`
}

func toPeriodJSON(p period.Instance) periodJSON {
	formats := make(map[string]string, len(period.FormatKinds()))
	for _, kind := range period.FormatKinds() {
		if s, err := period.Format(p, kind); err == nil {
			formats[kind] = s
		}
	}
	startDate, _ := period.Format(p, period.FormatISODate)
	return periodJSON{
		Name:       p.Name,
		Code:       p.Code,
		Year:       p.Year,
		Term:       p.Term(),
		AY:         p.AY(),
		AYStart:    p.AYStart,
		AYEnd:      p.AYEnd,
		StartDate:  startDate,
		CalendarID: p.CalendarID,
		Formats:    formats,
	}
}

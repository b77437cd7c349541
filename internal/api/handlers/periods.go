package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/internal/parse"
	"github.com/acadterm/acadterm/internal/period"
	"github.com/acadterm/acadterm/pkg/logger"
)

// PeriodHandler handles parsing and period-algebra endpoints.
type PeriodHandler struct {
	registry *calendar.Registry
	logger   *logger.Logger
}

// NewPeriodHandler creates a period handler.
func NewPeriodHandler(reg *calendar.Registry, log *logger.Logger) *PeriodHandler {
	return &PeriodHandler{registry: reg, logger: log}
}

// parseResult is one element of a batch parse response.
type parseResult struct {
	Input   string               `json:"input"`
	Period  *periodJSON          `json:"period,omitempty"`
	Warning *calendar.Diagnostic `json:"warning,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Parse parses one or more raw inputs against a calendar. Results align
// positionally with the inputs; failed elements carry their own error.
// POST /api/parse {"calendar": "semester", "inputs": ["fa26", "20271"]}
func (h *PeriodHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Calendar string   `json:"calendar"`
		Inputs   []string `json:"inputs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Inputs) == 0 {
		respondError(w, http.StatusBadRequest, "inputs must not be empty")
		return
	}

	cfg, err := h.registry.Get(req.Calendar)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	results := make([]parseResult, 0, len(req.Inputs))
	for _, res := range parse.AutoBatch(cfg, req.Inputs) {
		out := parseResult{Input: res.Input, Warning: res.Diagnostic}
		if res.Err != nil {
			out.Error = res.Err.Error()
		} else {
			p := toPeriodJSON(res.Instance)
			out.Period = &p
		}
		results = append(results, out)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"calendar": req.Calendar,
		"results":  results,
	})
}

// Shift parses an input and moves it by n periods.
// POST /api/periods/shift {"calendar": "semester", "input": "fa26", "n": 1}
func (h *PeriodHandler) Shift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Calendar string `json:"calendar"`
		Input    string `json:"input"`
		N        int    `json:"n"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg, err := h.registry.Get(req.Calendar)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	inst, diag, err := parse.Auto(cfg, req.Input)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}
	shifted, err := period.Add(cfg, inst, req.N)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"from":    toPeriodJSON(inst),
		"n":       req.N,
		"period":  toPeriodJSON(shifted),
		"warning": diag,
	})
}

// Sequence returns the inclusive period sequence between two inputs.
// GET /api/periods/sequence?calendar=semester&from=fa26&to=fa27&step=1
func (h *PeriodHandler) Sequence(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	calendarID := q.Get("calendar")
	fromRaw := q.Get("from")
	toRaw := q.Get("to")

	step := 1
	if s := q.Get("step"); s != "" {
		var err error
		step, err = strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "step must be an integer")
			return
		}
	}

	cfg, err := h.registry.Get(calendarID)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	from, _, err := parse.Auto(cfg, fromRaw)
	if err != nil {
		respondError(w, statusForError(err), "from: "+err.Error())
		return
	}
	to, _, err := parse.Auto(cfg, toRaw)
	if err != nil {
		respondError(w, statusForError(err), "to: "+err.Error())
		return
	}

	seq, err := period.Seq(cfg, from, to, step)
	if err != nil {
		respondError(w, statusForError(err), err.Error())
		return
	}

	periods := make([]periodJSON, len(seq))
	for i, p := range seq {
		periods[i] = toPeriodJSON(p)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"calendar": calendarID,
		"step":     step,
		"count":    len(periods),
		"periods":  periods,
	})
}

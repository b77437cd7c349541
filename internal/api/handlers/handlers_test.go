package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadterm/acadterm/internal/calendar"
	"github.com/acadterm/acadterm/pkg/config"
	"github.com/acadterm/acadterm/pkg/logger"
)

func testRouter(t *testing.T) (*mux.Router, *calendar.Registry) {
	t.Helper()

	reg := calendar.NewRegistry()
	require.NoError(t, calendar.RegisterPresets(reg))

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	calendarHandler := NewCalendarHandler(reg, nil, log)
	periodHandler := NewPeriodHandler(reg, log)

	r := mux.NewRouter()
	r.HandleFunc("/api/calendars", calendarHandler.List).Methods("GET")
	r.HandleFunc("/api/calendars", calendarHandler.Create).Methods("POST")
	r.HandleFunc("/api/calendars/{id}", calendarHandler.Get).Methods("GET")
	r.HandleFunc("/api/calendars/{id}/diagnostics", calendarHandler.Diagnostics).Methods("GET")
	r.HandleFunc("/api/calendars/{id}/month-map", calendarHandler.SetMonthMapping).Methods("PUT")
	r.HandleFunc("/api/parse", periodHandler.Parse).Methods("POST")
	r.HandleFunc("/api/periods/shift", periodHandler.Shift).Methods("POST")
	r.HandleFunc("/api/periods/sequence", periodHandler.Sequence).Methods("GET")
	return r, reg
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCalendars_ListAndGet(t *testing.T) {
	r, _ := testRouter(t)

	rec := doJSON(t, r, "GET", "/api/calendars", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Calendars []string `json:"calendars"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Equal(t, []string{"semester", "quarter", "trimester"}, listResp.Calendars)

	rec = doJSON(t, r, "GET", "/api/calendars/semester", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/calendars/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCalendars_Create(t *testing.T) {
	r, reg := testRouter(t)

	body := map[string]interface{}{
		"id":       "uni",
		"ay_start": "Autumn",
		"periods": []map[string]interface{}{
			{"name": "Autumn", "code": "au", "start_month": 9, "start_day": 1},
			{"name": "Lent", "code": "le", "start_month": 1, "start_day": 10},
		},
	}
	rec := doJSON(t, r, "POST", "/api/calendars", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	cfg, err := reg.Get("uni")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.PeriodCount())

	// Duplicate codes are rejected with the validation detail.
	body["periods"] = []map[string]interface{}{
		{"name": "Autumn", "code": "au", "start_month": 9, "start_day": 1},
		{"name": "Lent", "code": "AU", "start_month": 1, "start_day": 10},
	}
	rec = doJSON(t, r, "POST", "/api/calendars", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate period code")
}

func TestCalendars_MonthMapAndDiagnostics(t *testing.T) {
	r, reg := testRouter(t)

	cfg := &calendar.Config{
		ID: "jterm",
		Periods: []calendar.PeriodDef{
			{Name: "Fall", Code: "fa", StartMonth: 8, StartDay: 23},
			{Name: "Spring", Code: "sp", StartMonth: 1, StartDay: 15},
			{Name: "J-Term", Code: "jt", StartMonth: 1, StartDay: 2},
		},
		AYStartPeriod: "Fall",
	}
	require.NoError(t, reg.Register(cfg))

	rec := doJSON(t, r, "GET", "/api/calendars/jterm/diagnostics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ambiguous_month")

	rec = doJSON(t, r, "PUT", "/api/calendars/jterm/month-map", map[string]interface{}{
		"month": 1, "period_name": "J-Term",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, "GET", "/api/calendars/jterm/diagnostics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "ambiguous_month")
}

func TestParse_Batch(t *testing.T) {
	r, _ := testRouter(t)

	rec := doJSON(t, r, "POST", "/api/parse", map[string]interface{}{
		"calendar": "semester",
		"inputs":   []string{"fa26", "bogus", "20271"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			Input  string      `json:"input"`
			Period *periodJSON `json:"period"`
			Error  string      `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)

	assert.Equal(t, "Fall", resp.Results[0].Period.Name)
	assert.Equal(t, "2026-27", resp.Results[0].Period.AY)
	assert.Empty(t, resp.Results[0].Error)

	assert.Nil(t, resp.Results[1].Period)
	assert.NotEmpty(t, resp.Results[1].Error)

	assert.Equal(t, "Spring", resp.Results[2].Period.Name)
	assert.Equal(t, 2027, resp.Results[2].Period.Year)
}

func TestParse_UnknownCalendar(t *testing.T) {
	r, _ := testRouter(t)

	rec := doJSON(t, r, "POST", "/api/parse", map[string]interface{}{
		"calendar": "missing",
		"inputs":   []string{"fa26"},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShift(t *testing.T) {
	r, _ := testRouter(t)

	rec := doJSON(t, r, "POST", "/api/periods/shift", map[string]interface{}{
		"calendar": "semester", "input": "su27", "n": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Period periodJSON `json:"period"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Fall", resp.Period.Name)
	assert.Equal(t, 2027, resp.Period.Year)
	assert.Equal(t, "2027-28", resp.Period.AY)
}

func TestSequence(t *testing.T) {
	r, _ := testRouter(t)

	rec := doJSON(t, r, "GET", "/api/periods/sequence?calendar=semester&from=fa26&to=fa27", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count   int          `json:"count"`
		Periods []periodJSON `json:"periods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Count)
	require.Len(t, resp.Periods, 4)
	assert.Equal(t, "Fall", resp.Periods[0].Name)
	assert.Equal(t, "Fall", resp.Periods[3].Name)
	assert.Equal(t, 2027, resp.Periods[3].Year)

	rec = doJSON(t, r, "GET", "/api/periods/sequence?calendar=semester&from=fa26&to=fa27&step=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

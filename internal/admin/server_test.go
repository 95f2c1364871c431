package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"colonysim/internal/model"
	"colonysim/internal/sim"
)

func testRunner() *sim.Runner {
	params := model.Parameters{
		TemperatureC:      5, // outside the reproductive band
		HumidityPct:       70,
		InitialPopulation: 1000,
		Potency:           0.5,
		HorizonDays:       30,
	}
	return sim.NewRunner(sim.NewEngine(sim.DefaultBiology()), params, nil, nil)
}

func TestHandleSeriesBeforeAnyRun(t *testing.T) {
	server := NewServer(testRunner())
	req := httptest.NewRequest(http.MethodGet, "/series", nil)
	w := httptest.NewRecorder()
	server.handleSeries(w, req)
	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 before any run, got %v", w.Result().StatusCode)
	}
}

func TestHandleRunAndSeries(t *testing.T) {
	runner := testRunner()
	server := NewServer(runner)

	req := httptest.NewRequest(http.MethodPost, "/run?scenario=test&potency=0.9", nil)
	w := httptest.NewRecorder()
	server.handleRun(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected status OK, got %v: %s", w.Result().StatusCode, w.Body.String())
	}

	var summary model.RunSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Scenario != "test" || summary.Params.Potency != 0.9 {
		t.Errorf("override not applied: %+v", summary)
	}
	if !summary.Elimination.Reached {
		t.Errorf("high dose on a non-reproducing colony should reach elimination")
	}

	w = httptest.NewRecorder()
	server.handleSeries(w, httptest.NewRequest(http.MethodGet, "/series", nil))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after run, got %v", w.Result().StatusCode)
	}
	var records []model.DailyRecord
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("decode series: %v", err)
	}
	if len(records) != 31 {
		t.Errorf("expected 31 records, got %d", len(records))
	}
}

func TestHandleRunInvalidParams(t *testing.T) {
	server := NewServer(testRunner())

	req := httptest.NewRequest(http.MethodPost, "/run?initial_population=0", nil)
	w := httptest.NewRecorder()
	server.handleRun(w, req)
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid parameters, got %v", w.Result().StatusCode)
	}

	req = httptest.NewRequest(http.MethodPost, "/run?potency=abc", nil)
	w = httptest.NewRecorder()
	server.handleRun(w, req)
	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for unparsable query value, got %v", w.Result().StatusCode)
	}
}

func TestHandleIndex(t *testing.T) {
	runner := testRunner()
	server := NewServer(runner)

	w := httptest.NewRecorder()
	server.handleIndex(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("index status = %v", w.Result().StatusCode)
	}
	if body := w.Body.String(); body == "" {
		t.Fatalf("empty index page")
	}

	if _, err := runner.Run("baseline"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	w = httptest.NewRecorder()
	server.handleIndex(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("index status after run = %v", w.Result().StatusCode)
	}
}

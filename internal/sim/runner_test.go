package sim

import (
	"sync"
	"testing"

	"colonysim/internal/model"
)

// MockWriter collects daily records for validation.
type MockWriter struct {
	mu   sync.Mutex
	Recs []model.DailyRecord
}

func (w *MockWriter) Write(rec model.DailyRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Recs = append(w.Recs, rec)
	return nil
}

type MockSummaryWriter struct {
	mu        sync.Mutex
	Summaries []model.RunSummary
}

func (w *MockSummaryWriter) WriteSummary(s model.RunSummary) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.Summaries = append(w.Summaries, s)
	return nil
}

func TestRunnerRunWritesSeriesAndSummary(t *testing.T) {
	writer := &MockWriter{}
	sWriter := &MockSummaryWriter{}
	p := neutralParams()
	runner := NewRunner(NewEngine(DefaultBiology()), p, writer, sWriter)

	summary, err := runner.Run("baseline")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(writer.Recs) != p.HorizonDays+1 {
		t.Fatalf("expected %d records written, got %d", p.HorizonDays+1, len(writer.Recs))
	}
	for _, rec := range writer.Recs {
		if rec.RunID != summary.RunID {
			t.Fatalf("record run_id %q does not match summary %q", rec.RunID, summary.RunID)
		}
		if rec.Scenario != "baseline" {
			t.Fatalf("record scenario = %q, want baseline", rec.Scenario)
		}
		if rec.Timestamp.IsZero() {
			t.Fatalf("record day %d has no timestamp", rec.Day)
		}
	}
	if len(sWriter.Summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(sWriter.Summaries))
	}
	if got := sWriter.Summaries[0].FinalPopulation; got != writer.Recs[len(writer.Recs)-1].Population {
		t.Fatalf("summary final population %v does not match last record", got)
	}
}

func TestRunnerRunWithInvalidParams(t *testing.T) {
	writer := &MockWriter{}
	runner := NewRunner(NewEngine(DefaultBiology()), neutralParams(), writer, nil)

	p := neutralParams()
	p.InitialPopulation = 0
	if _, err := runner.RunWith(p, "broken"); err == nil {
		t.Fatalf("expected InvalidParamError")
	}
	if len(writer.Recs) != 0 {
		t.Fatalf("no records should be written on rejection, got %d", len(writer.Recs))
	}
}

func TestRunnerCompare(t *testing.T) {
	sWriter := &MockSummaryWriter{}
	base := neutralParams()
	runner := NewRunner(NewEngine(DefaultBiology()), base, &MockWriter{}, sWriter)

	hot := base
	hot.TemperatureC = 30
	hot.HumidityPct = 70
	dosed := base
	dosed.Potency = 0.5

	summaries, err := runner.Compare([]NamedRun{
		{Scenario: "baseline", Params: base},
		{Scenario: "hot", Params: hot},
		{Scenario: "dosed", Params: dosed},
	})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	for i, name := range []string{"baseline", "hot", "dosed"} {
		if summaries[i].Scenario != name {
			t.Fatalf("summary %d scenario = %q, want %q (input order)", i, summaries[i].Scenario, name)
		}
	}
	if !summaries[2].Elimination.Reached {
		t.Fatalf("dosed scenario should reach elimination")
	}
	if summaries[0].Elimination.Reached {
		t.Fatalf("untreated baseline should not reach elimination")
	}
	seen := map[string]bool{}
	for _, s := range summaries {
		if seen[s.RunID] {
			t.Fatalf("duplicate run id %q", s.RunID)
		}
		seen[s.RunID] = true
	}
}

func TestRunnerSnapshot(t *testing.T) {
	runner := NewRunner(NewEngine(DefaultBiology()), neutralParams(), nil, nil)
	if _, _, ok := runner.Snapshot(); ok {
		t.Fatalf("snapshot before any run should report not ok")
	}
	summary, err := runner.Run("baseline")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	records, got, ok := runner.Snapshot()
	if !ok {
		t.Fatalf("snapshot after run should be available")
	}
	if got.RunID != summary.RunID {
		t.Fatalf("snapshot summary run id %q, want %q", got.RunID, summary.RunID)
	}
	if len(records) != neutralParams().HorizonDays+1 {
		t.Fatalf("snapshot has %d records", len(records))
	}
}

package model

import "testing"

func TestPhaseFor(t *testing.T) {
	cases := []struct {
		population float64
		initial    float64
		want       string
	}{
		{1000, 1000, PhaseActive},
		{50, 1000, PhaseActive},   // exactly 5% is still active
		{49.9, 1000, PhaseEliminated},
		{0, 1000, PhaseEliminated},
	}
	for _, c := range cases {
		if got := PhaseFor(c.population, c.initial); got != c.want {
			t.Errorf("PhaseFor(%v, %v) = %q, want %q", c.population, c.initial, got, c.want)
		}
	}
}

func TestTableNames(t *testing.T) {
	if (DailyRecord{}).TableName() == "" {
		t.Fatalf("population table name must not be empty")
	}
	if (RunSummary{}).TableName() == "" {
		t.Fatalf("run table name must not be empty")
	}
}

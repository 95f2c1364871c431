package sim

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"colonysim/internal/model"
)

func TestFileWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	recPath := filepath.Join(dir, "run.jsonl")
	sumPath := filepath.Join(dir, "run.runs")

	fw, err := NewFileWriter(recPath, sumPath)
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}

	recs := []model.DailyRecord{
		{RunID: "r1", Day: 0, Population: 500, Phase: model.PhaseActive},
		{RunID: "r1", Day: 1, Population: 400, Phase: model.PhaseActive},
	}
	if err := fw.WriteBatch(recs); err != nil {
		t.Fatalf("WriteBatch: %v", err)
	}
	if err := fw.WriteSummary(model.RunSummary{RunID: "r1", FinalPopulation: 400}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(recPath)
	if err != nil {
		t.Fatalf("open records: %v", err)
	}
	defer f.Close()
	var got []model.DailyRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var r model.DailyRecord
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("unmarshal record: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 2 || got[1].Population != 400 {
		t.Fatalf("unexpected records read back: %+v", got)
	}

	b, err := os.ReadFile(sumPath)
	if err != nil {
		t.Fatalf("read summaries: %v", err)
	}
	var s model.RunSummary
	if err := json.Unmarshal(b, &s); err != nil {
		t.Fatalf("unmarshal summary: %v", err)
	}
	if s.RunID != "r1" {
		t.Fatalf("summary run id = %q, want r1", s.RunID)
	}
}

func TestFileWriterNoSummaryPath(t *testing.T) {
	fw, err := NewFileWriter(filepath.Join(t.TempDir(), "run.jsonl"), "")
	if err != nil {
		t.Fatalf("NewFileWriter: %v", err)
	}
	defer fw.Close()
	if err := fw.WriteSummary(model.RunSummary{RunID: "r1"}); err != nil {
		t.Fatalf("WriteSummary without summary file should be a no-op, got %v", err)
	}
}

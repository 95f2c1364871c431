package main

import (
	"os"
	"path/filepath"
	"testing"

	"colonysim/internal/model"
	"colonysim/internal/sim"
)

func TestNewWritersPrintOnly(t *testing.T) {
	w, sw, cleanup, err := newWriters(model.Parameters{}, true, false, "")
	if err != nil {
		t.Fatalf("newWriters: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*sim.StdoutWriter); !ok {
		t.Fatalf("expected StdoutWriter, got %T", w)
	}
	if _, ok := sw.(*sim.StdoutWriter); !ok {
		t.Fatalf("expected StdoutWriter summary writer, got %T", sw)
	}
}

func TestNewWritersColor(t *testing.T) {
	w, _, cleanup, err := newWriters(model.Parameters{}, true, true, "")
	if err != nil {
		t.Fatalf("newWriters: %v", err)
	}
	defer cleanup()
	if _, ok := w.(*sim.ColorStdoutWriter); !ok {
		t.Fatalf("expected ColorStdoutWriter, got %T", w)
	}
}

func TestNewWritersWithLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.jsonl")
	w, sw, cleanup, err := newWriters(model.Parameters{}, true, false, logFile)
	if err != nil {
		t.Fatalf("newWriters: %v", err)
	}
	if _, ok := w.(*sim.MultiWriter); !ok {
		t.Fatalf("expected MultiWriter, got %T", w)
	}

	if err := w.Write(model.DailyRecord{Day: 1, Population: 10}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sw.WriteSummary(model.RunSummary{RunID: "r1"}); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	cleanup()

	for _, path := range []string{logFile, logFile + ".runs"} {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", path, err)
		}
		if st.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

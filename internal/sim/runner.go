// Runner orchestrating engine runs and writer fan-out
package sim

import (
	"log"
	"sync"
	"time"

	"colonysim/internal/model"

	"github.com/google/uuid"
)

// RecordWriter is an interface to support different output writers for the
// daily population series.
type RecordWriter interface {
	Write(model.DailyRecord) error
}

// SummaryWriter handles per-run summary rows.
type SummaryWriter interface {
	WriteSummary(model.RunSummary) error
}

// Optional: record writers may support batch mode
type batchRecordWriter interface {
	WriteBatch([]model.DailyRecord) error
}

// Optional: summary writers may support batch mode
type batchSummaryWriter interface {
	WriteSummaries([]model.RunSummary) error
}

// Runner executes simulations and fans the output out to writers. Each run is
// independent; the mutex only guards the last-run snapshot used by the admin
// surface.
type Runner struct {
	engine        *Engine
	writer        RecordWriter
	summaryWriter SummaryWriter

	mu          sync.Mutex
	baseParams  model.Parameters
	lastRecords []model.DailyRecord
	lastSummary model.RunSummary
	haveRun     bool
}

// NewRunner wires an engine to its writers. summaryWriter may be nil.
func NewRunner(engine *Engine, base model.Parameters, writer RecordWriter, summaryWriter SummaryWriter) *Runner {
	return &Runner{
		engine:        engine,
		writer:        writer,
		summaryWriter: summaryWriter,
		baseParams:    base,
	}
}

// Params returns the base parameter set.
func (r *Runner) Params() model.Parameters {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.baseParams
}

// Run simulates the base parameter set under the given scenario name.
func (r *Runner) Run(scenario string) (model.RunSummary, error) {
	return r.RunWith(r.Params(), scenario)
}

// RunWith simulates an explicit parameter set, writes the series and summary,
// and records the run as the latest snapshot.
func (r *Runner) RunWith(p model.Parameters, scenario string) (model.RunSummary, error) {
	records, elim, err := r.engine.Run(p)
	if err != nil {
		return model.RunSummary{}, err
	}

	runID := uuid.New().String()
	start := time.Now().UTC()
	Stamp(records, runID, scenario, start)

	summary := model.RunSummary{
		RunID:           runID,
		Scenario:        scenario,
		Params:          p,
		FinalPopulation: records[len(records)-1].Population,
		Elimination:     elim,
		Timestamp:       start,
	}

	if r.writer != nil {
		if bw, ok := r.writer.(batchRecordWriter); ok {
			if err := bw.WriteBatch(records); err != nil {
				log.Printf("[Runner] batch write failed: %v", err)
			}
		} else {
			for _, rec := range records {
				if err := r.writer.Write(rec); err != nil {
					log.Printf("[Runner] write failed for day %d: %v", rec.Day, err)
				}
			}
		}
	}
	if r.summaryWriter != nil {
		if err := r.summaryWriter.WriteSummary(summary); err != nil {
			log.Printf("[Runner] summary write failed: %v", err)
		}
	}

	r.mu.Lock()
	r.lastRecords = records
	r.lastSummary = summary
	r.haveRun = true
	r.mu.Unlock()

	return summary, nil
}

// NamedRun pairs a scenario name with its parameter set for comparison runs.
type NamedRun struct {
	Scenario string
	Params   model.Parameters
}

// Compare runs the given parameter sets concurrently. Runs are independent and
// stateless, so no coordination beyond the join is needed. Results come back
// in input order; the first error is returned after all runs finish.
func (r *Runner) Compare(runs []NamedRun) ([]model.RunSummary, error) {
	summaries := make([]model.RunSummary, len(runs))
	errs := make([]error, len(runs))

	var wg sync.WaitGroup
	for i, nr := range runs {
		wg.Add(1)
		go func(i int, nr NamedRun) {
			defer wg.Done()
			summaries[i], errs[i] = r.RunWith(nr.Params, nr.Scenario)
		}(i, nr)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

// Snapshot returns the latest run's series and summary, if any.
func (r *Runner) Snapshot() ([]model.DailyRecord, model.RunSummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.haveRun {
		return nil, model.RunSummary{}, false
	}
	records := make([]model.DailyRecord, len(r.lastRecords))
	copy(records, r.lastRecords)
	return records, r.lastSummary, true
}

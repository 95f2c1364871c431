package sim

import (
	"colonysim/internal/model"
)

// MultiWriter fan-outs daily records and run summaries to multiple writers.
type MultiWriter struct {
	recWriters     []RecordWriter
	summaryWriters []SummaryWriter
}

// NewMultiWriter creates a new MultiWriter.
func NewMultiWriter(rws []RecordWriter, sws []SummaryWriter) *MultiWriter {
	return &MultiWriter{recWriters: rws, summaryWriters: sws}
}

// Write sends a daily record to all writers.
func (mw *MultiWriter) Write(rec model.DailyRecord) error {
	for _, w := range mw.recWriters {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteBatch sends multiple daily records to all writers, using batch if supported.
func (mw *MultiWriter) WriteBatch(recs []model.DailyRecord) error {
	for _, w := range mw.recWriters {
		if bw, ok := w.(batchRecordWriter); ok {
			if err := bw.WriteBatch(recs); err != nil {
				return err
			}
			continue
		}
		for _, r := range recs {
			if err := w.Write(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSummary sends a run summary to all summary writers.
func (mw *MultiWriter) WriteSummary(s model.RunSummary) error {
	for _, w := range mw.summaryWriters {
		if err := w.WriteSummary(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummaries sends multiple summaries to all summary writers, using batch if supported.
func (mw *MultiWriter) WriteSummaries(rows []model.RunSummary) error {
	for _, w := range mw.summaryWriters {
		if bw, ok := w.(batchSummaryWriter); ok {
			if err := bw.WriteSummaries(rows); err != nil {
				return err
			}
			continue
		}
		for _, s := range rows {
			if err := w.WriteSummary(s); err != nil {
				return err
			}
		}
	}
	return nil
}

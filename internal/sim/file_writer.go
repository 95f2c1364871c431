package sim

import (
	"encoding/json"
	"os"

	"colonysim/internal/model"
)

// FileWriter writes daily records and run summaries to JSONL files.
type FileWriter struct {
	recFile     *os.File
	summaryFile *os.File
	recEnc      *json.Encoder
	summaryEnc  *json.Encoder
}

// NewFileWriter creates a FileWriter. summaryPath may be empty to skip the
// summary log.
func NewFileWriter(recordPath, summaryPath string) (*FileWriter, error) {
	rf, err := os.Create(recordPath)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{recFile: rf, recEnc: json.NewEncoder(rf)}
	if summaryPath != "" {
		sf, err := os.Create(summaryPath)
		if err != nil {
			rf.Close()
			return nil, err
		}
		fw.summaryFile = sf
		fw.summaryEnc = json.NewEncoder(sf)
	}
	return fw, nil
}

// Write logs a single daily record.
func (f *FileWriter) Write(rec model.DailyRecord) error {
	return f.recEnc.Encode(rec)
}

// WriteBatch logs multiple daily records.
func (f *FileWriter) WriteBatch(recs []model.DailyRecord) error {
	for _, r := range recs {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary logs a run summary, if enabled.
func (f *FileWriter) WriteSummary(s model.RunSummary) error {
	if f.summaryEnc == nil {
		return nil
	}
	return f.summaryEnc.Encode(s)
}

// WriteSummaries logs multiple run summaries.
func (f *FileWriter) WriteSummaries(rows []model.RunSummary) error {
	for _, s := range rows {
		if err := f.WriteSummary(s); err != nil {
			return err
		}
	}
	return nil
}

// Close closes any underlying files.
func (f *FileWriter) Close() error {
	var err error
	if f.recFile != nil {
		if e := f.recFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	if f.summaryFile != nil {
		if e := f.summaryFile.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

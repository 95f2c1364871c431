package sim

import (
	"context"
	"log"
	"net"
	"strconv"

	"colonysim/internal/model"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeDBWriter writes daily records and run summaries to GreptimeDB via
// the ingester client.
type GreptimeDBWriter struct {
	client       greptimeClient
	recordTable  string
	summaryTable string
}

// NewGreptimeDBWriter creates a new GreptimeDB writer. endpoint is host:port;
// empty table names fall back to the model defaults.
func NewGreptimeDBWriter(endpoint, database, recordTable, summaryTable string) (*GreptimeDBWriter, error) {
	host, portStr, err := net.SplitHostPort(endpoint)
	if err != nil {
		host = endpoint
		portStr = "4001"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	if recordTable == "" {
		recordTable = model.PopulationTableName
	}
	if summaryTable == "" {
		summaryTable = model.RunTableName
	}
	return &GreptimeDBWriter{
		client:       client,
		recordTable:  recordTable,
		summaryTable: summaryTable,
	}, nil
}

// Write inserts a single daily record.
func (w *GreptimeDBWriter) Write(rec model.DailyRecord) error {
	return w.WriteBatch([]model.DailyRecord{rec})
}

// WriteBatch inserts multiple daily records.
func (w *GreptimeDBWriter) WriteBatch(recs []model.DailyRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tbl, err := table.New(w.recordTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("scenario", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("day", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("population", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("kill_fraction", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("phase", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	for _, r := range recs {
		if err := tbl.AddRow(r.RunID, r.Scenario, int64(r.Day), r.Population, r.KillFraction, r.Phase, r.Timestamp); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] record write failed: %v", err)
		return err
	}
	return nil
}

// WriteSummary inserts a single run summary.
func (w *GreptimeDBWriter) WriteSummary(s model.RunSummary) error {
	return w.WriteSummaries([]model.RunSummary{s})
}

// WriteSummaries inserts multiple run summaries.
func (w *GreptimeDBWriter) WriteSummaries(rows []model.RunSummary) error {
	if len(rows) == 0 {
		return nil
	}

	tbl, err := table.New(w.summaryTable)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("scenario", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("initial_population", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("final_population", types.FLOAT64); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("eliminated", types.BOOLEAN); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("elimination_day", types.INT64); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	for _, s := range rows {
		if err := tbl.AddRow(s.RunID, s.Scenario, s.Params.InitialPopulation,
			s.FinalPopulation, s.Elimination.Reached, int64(s.Elimination.Day), s.Timestamp); err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeDBWriter] summary write failed: %v", err)
		return err
	}
	return nil
}

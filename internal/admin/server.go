package admin

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"colonysim/internal/model"
	"colonysim/internal/sim"
)

// Server exposes the latest run and a re-run endpoint over HTTP. It is the
// concrete form of the charting collaborator: /series feeds any external
// renderer.
type Server struct {
	Runner *sim.Runner
	tpl    *template.Template
}

//go:embed templates/index.html
var content embed.FS

// NewServer creates a server around a runner.
func NewServer(runner *sim.Runner) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{Runner: runner, tpl: tpl}
}

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/series", s.handleSeries)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/run", s.handleRun)
}

// Start serves until ctx is canceled.
func (s *Server) Start(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	s.routes(mux)
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	records, summary, ok := s.Runner.Snapshot()
	data := struct {
		HaveRun bool
		Params  model.Parameters
		Summary model.RunSummary
		Days    int
	}{
		HaveRun: ok,
		Params:  s.Runner.Params(),
		Summary: summary,
		Days:    len(records),
	}
	s.tpl.Execute(w, data)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	records, _, ok := s.Runner.Snapshot()
	if !ok {
		http.Error(w, "no run yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, summary, ok := s.Runner.Snapshot()
	if !ok {
		http.Error(w, "no run yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// handleRun re-runs the simulation with query-parameter overrides on top of
// the base configuration and returns the new summary.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	params := s.Runner.Params()
	q := r.URL.Query()

	setF := func(key string, dst *float64) error {
		if v := q.Get(key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			*dst = f
		}
		return nil
	}
	setI := func(key string, dst *int) error {
		if v := q.Get(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*dst = n
		}
		return nil
	}

	if err := errors.Join(
		setF("temperature_c", &params.TemperatureC),
		setF("humidity_pct", &params.HumidityPct),
		setF("immigration", &params.Immigration),
		setF("initial_population", &params.InitialPopulation),
		setF("potency", &params.Potency),
		setI("feeding_delay_days", &params.FeedingDelayDays),
		setI("horizon_days", &params.HorizonDays),
	); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scenario := q.Get("scenario")
	if scenario == "" {
		scenario = "adhoc"
	}
	summary, err := s.Runner.RunWith(params, scenario)
	if err != nil {
		var ipe *sim.InvalidParamError
		if errors.As(err, &ipe) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

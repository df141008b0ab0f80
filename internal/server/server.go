package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ESloman/cslo/internal/harness"
	"github.com/gorilla/mux"
)

// ReportServer serves a saved run report over HTTP so a run's outcome can
// be inspected after the fact (CI dashboards, quick curl checks).
type ReportServer struct {
	server *http.Server
	logger harness.Logger

	mu     sync.RWMutex
	report *harness.Report
}

// NewReportServer creates a server for the given report.
func NewReportServer(report *harness.Report, logger harness.Logger) *ReportServer {
	if logger == nil {
		logger = harness.NopLogger{}
	}
	return &ReportServer{report: report, logger: logger}
}

// SetReport replaces the served report.
func (s *ReportServer) SetReport(report *harness.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = report
}

// Handler builds the route table.
func (s *ReportServer) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/api/report", s.handleReport).Methods("GET")
	router.HandleFunc("/api/summary", s.handleSummary).Methods("GET")
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	return router
}

// Start serves until the listener fails or Stop is called.
func (s *ReportServer) Start(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	s.logger.Info("report server starting", "addr", addr)
	return s.server.ListenAndServe()
}

// Stop closes the server.
func (s *ReportServer) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}

func (s *ReportServer) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.report); err != nil {
		s.logger.Error("failed to encode report", "error", err)
	}
}

func (s *ReportServer) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := struct {
		Root        string `json:"root"`
		Passed      int    `json:"passed"`
		Failed      int    `json:"failed"`
		Total       int    `json:"total"`
		Interrupted bool   `json:"interrupted"`
	}{
		Root:        s.report.Root,
		Passed:      len(s.report.Passed),
		Failed:      len(s.report.Failed),
		Total:       s.report.Total(),
		Interrupted: s.report.Interrupted,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		s.logger.Error("failed to encode summary", "error", err)
	}
}

func (s *ReportServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

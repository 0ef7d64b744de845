package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"spread-alerts/internal/service"
	"spread-alerts/internal/spread"
)

// Server is the thin HTTP layer over the service. Routes map 1:1 onto the
// service operations; all error-to-status policy lives in the spread error
// taxonomy.
type Server struct {
	svc    *service.Service
	logger zerolog.Logger
	mux    *http.ServeMux
}

// New constructs the HTTP server.
func New(svc *service.Service, logger zerolog.Logger) *Server {
	s := &Server{
		svc:    svc,
		logger: logger.With().Str("component", "http_server").Logger(),
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) routes() {
	s.mux.HandleFunc("GET /spread/{market_id}", s.handleSpread)
	s.mux.HandleFunc("GET /all", s.handleAllSpreads)
	s.mux.HandleFunc("POST /set-alert/{market_id}/{value}/{type_of_alert}", s.handleSetAlert)
	s.mux.HandleFunc("GET /alert/{market_id}/{type_of_alert}", s.handleEvaluateAlert)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) handleSpread(w http.ResponseWriter, r *http.Request) {
	marketID := r.PathValue("market_id")

	value, err := s.svc.Spread(r.Context(), marketID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"spread": value.String()})
}

func (s *Server) handleAllSpreads(w http.ResponseWriter, r *http.Request) {
	results, err := s.svc.AllSpreads(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSetAlert(w http.ResponseWriter, r *http.Request) {
	marketID := r.PathValue("market_id")
	value := r.PathValue("value")
	alertType := r.PathValue("type_of_alert")

	if err := s.svc.SetAlert(r.Context(), marketID, value, alertType); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"alert": "Alert created"})
}

func (s *Server) handleEvaluateAlert(w http.ResponseWriter, r *http.Request) {
	marketID := r.PathValue("market_id")
	alertType := r.PathValue("type_of_alert")

	verdict, err := s.svc.EvaluateAlert(r.Context(), marketID, alertType)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Not-modified semantics: a stored alert whose condition does not hold
	// right now is reported as 304.
	status := http.StatusOK
	if !verdict.Triggered() {
		status = http.StatusNotModified
	}
	s.writeJSON(w, status, map[string]string{"alert": verdict.String()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	classified := spread.Classify(err)
	if classified.Code == spread.CodeInternal {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		s.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	s.writeJSON(w, classified.HTTPStatus(), map[string]string{
		"error": classified.Message,
		"code":  string(classified.Code),
	})
}

// Package api - Thin HTTP layer over the quotation service
// The API is ONLY responsible for: input decoding, service calls, output serialization.
// The API NEVER performs quote arithmetic.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"solar-quote/core/projection"
	"solar-quote/core/quote"
	"solar-quote/core/ui"
	"solar-quote/internal/errors"
)

// RequestIDHeader carries the per-request ID
const RequestIDHeader = "X-Request-ID"

// Options configures the server
type Options struct {
	Version         string
	AllowedOrigins  []string
	ProjectionYears int
	Logger          *zap.Logger
}

// Server is the API server
type Server struct {
	service *quote.Service
	router  *mux.Router
	handler http.Handler
	opts    Options
	logger  *zap.Logger
}

// NewServer creates a new API server around a quotation service
func NewServer(service *quote.Service, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		service: service,
		router:  mux.NewRouter(),
		opts:    opts,
		logger:  logger,
	}

	s.registerRoutes()
	s.router.Use(s.requestLogger)

	s.handler = cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	}).Handler(s.router)

	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	v1 := s.router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/installation", s.handleInstallation).Methods(http.MethodPost)
	v1.HandleFunc("/savings", s.handleSavings).Methods(http.MethodPost)
	v1.HandleFunc("/payback", s.handlePayback).Methods(http.MethodGet)
	v1.HandleFunc("/projection", s.handleProjection).Methods(http.MethodGet)
	v1.HandleFunc("/record", s.handleRecord).Methods(http.MethodGet)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/version", s.handleVersion).Methods(http.MethodGet)
}

// handleInstallation handles POST /v1/installation
func (s *Server) handleInstallation(w http.ResponseWriter, r *http.Request) {
	var req InstallationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	q, err := s.service.Installation(r.Context(), string(req.Consumption))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, q, http.StatusOK)
}

// handleSavings handles POST /v1/savings
func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	var req SavingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	q, err := s.service.Savings(r.Context(), string(req.Consumption), string(req.Rate))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, q, http.StatusOK)
}

// handlePayback handles GET /v1/payback
func (s *Server) handlePayback(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.Payback(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, PaybackResponse{Payback: *p, Text: ui.PaybackText(p)}, http.StatusOK)
}

// handleProjection handles GET /v1/projection?years=N
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	years := s.opts.ProjectionYears
	if v := r.URL.Query().Get("years"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > projection.MaxYears {
			s.writeError(w, string(errors.TypeInvalidInput),
				fmt.Sprintf("years must be an integer between 1 and %d", projection.MaxYears), http.StatusBadRequest)
			return
		}
		years = n
	}
	s.writeJSON(w, s.service.Projection(r.Context(), years), http.StatusOK)
}

// handleRecord handles GET /v1/record
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.service.Record(), http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.opts.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.opts.Version,
		"engine":      "solar-quote",
		"api_version": "v1",
	}, http.StatusOK)
}

// requestLogger tags each request with an ID and logs its outcome
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// statusFor maps a domain error type to an HTTP status
func statusFor(t errors.Type) int {
	switch t {
	case errors.TypeInvalidInput:
		return http.StatusBadRequest
	case errors.TypeMissingPrerequisite:
		return http.StatusConflict
	case errors.TypeDivisionByZero, errors.TypeNoPayback:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	t := errors.TypeOf(err)
	if t == "" {
		t = errors.TypeInternal
	}
	s.writeError(w, string(t), errors.MessageOf(err), statusFor(t))
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/internal/presentation/graph"
	"github.com/aretw0/cubewalk/internal/runtime"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/observability"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/aretw0/cubewalk/pkg/runner"
	"github.com/aretw0/cubewalk/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the solver over JSON.
type Server struct {
	Solver   ports.Solver
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics records solve outcomes in m and serves gatherer on /metrics.
func WithMetrics(m *observability.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Metrics = m
		s.Gatherer = gatherer
	}
}

// SolveResponse is the body of POST /solve.
type SolveResponse struct {
	Name    string           `json:"name,omitempty"`
	Results []*domain.Result `json:"results"`
	// Mismatches lists expectations from the document that were not met.
	Mismatches []string `json:"mismatches,omitempty"`
}

// SeamsResponse is the body of POST /seams.
type SeamsResponse struct {
	Mode  domain.Mode   `json:"mode"`
	Seams []domain.Seam `json:"seams"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewHandler creates a new HTTP handler for the solver.
func NewHandler(solver ports.Solver, opts ...Option) http.Handler {
	s := &Server{
		Solver: solver,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Post("/solve", s.Solve)
	r.Post("/seams", s.Seams)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "cubewalk-http",
		"version": strings.TrimSpace(cubewalk.Version),
	})
}

// Solve handles the POST /solve request. The body is a puzzle document;
// every mode it asks for is solved in order.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request) {
	doc, puzzle, ok := s.readPuzzle(w, r)
	if !ok {
		return
	}

	resp := SolveResponse{Name: doc.Name}
	for _, mode := range doc.Modes() {
		start := time.Now()
		res, err := s.Solver.Solve(r.Context(), puzzle, mode)
		if s.Metrics != nil {
			s.Metrics.ObserveSolve(mode, time.Since(start).Seconds(), err)
		}
		if err != nil {
			s.fail(w, r, err)
			return
		}
		resp.Results = append(resp.Results, res)
		if err := doc.Check(res); err != nil {
			resp.Mismatches = append(resp.Mismatches, err.Error())
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// Seams handles the POST /seams request. The document's mode must name a
// single mode; it defaults to cube. With ?format=mermaid the seams are
// returned as a Mermaid diagram.
func (s *Server) Seams(w http.ResponseWriter, r *http.Request) {
	doc, puzzle, ok := s.readPuzzle(w, r)
	if !ok {
		return
	}

	mode := domain.ModeCube
	if doc.Mode != "" {
		m, err := domain.ParseMode(doc.Mode)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		mode = m
	}

	seams, err := s.Solver.Seams(r.Context(), puzzle, mode)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if r.URL.Query().Get("format") == "mermaid" {
		grid, err := runtime.NewFaceGrid(puzzle.Rows, puzzle.FaceSize)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, graph.GenerateMermaid(grid.Faces(), seams, nil))
		return
	}

	writeJSON(w, http.StatusOK, SeamsResponse{Mode: mode, Seams: seams})
}

func (s *Server) readPuzzle(w http.ResponseWriter, r *http.Request) (*schema.Document, *domain.Puzzle, bool) {
	// One byte over the limit lets SanitizeInput see oversized input without
	// buffering all of it.
	limit := int64(runner.MaxInputSize())
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit+1))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("%w: limit=%d", runner.ErrInputTooLarge, limit))
			return nil, nil, false
		}
		s.respondError(w, r, http.StatusBadRequest, fmt.Errorf("failed to read body: %w", err))
		return nil, nil, false
	}

	clean, err := runner.SanitizeInput(string(body))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return nil, nil, false
	}

	doc, err := schema.Decode([]byte(clean), schema.FormatJSON)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, err)
		return nil, nil, false
	}

	puzzle, err := doc.Puzzle()
	if err != nil {
		s.fail(w, r, err)
		return nil, nil, false
	}
	return doc, puzzle, true
}

// fail maps domain errors to 400 and everything else to 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if isClientError(err) {
		status = http.StatusBadRequest
	}
	s.respondError(w, r, status, err)
}

func isClientError(err error) bool {
	for _, target := range []error{
		domain.ErrFormat,
		domain.ErrInvalidInstruction,
		domain.ErrTopology,
		domain.ErrUnknownMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return schema.ValidationErrors(err) != nil
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestIDFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		s.Logger.Error("Request failed", "path", r.URL.Path, "request_id", id, "error", err)
	} else {
		s.Logger.Warn("Request rejected", "path", r.URL.Path, "request_id", id, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

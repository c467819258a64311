package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/cubewalk"
	"github.com/aretw0/cubewalk/pkg/domain"
	"github.com/aretw0/cubewalk/pkg/ports"
	"github.com/aretw0/cubewalk/pkg/runner"
	"github.com/aretw0/cubewalk/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PuzzleArgs are the arguments shared by every tool.
type PuzzleArgs struct {
	Net      string `json:"net"`
	Path     string `json:"path"`
	Mode     string `json:"mode"`
	FaceSize int    `json:"face_size"`
}

// SolveResponse is the structured result of solve_net.
type SolveResponse struct {
	Results []*domain.Result `json:"results" jsonschema_description:"One result per solved mode"`
}

// SeamsResponse is the structured result of resolve_seams.
type SeamsResponse struct {
	Mode  domain.Mode   `json:"mode" jsonschema_description:"Mode the net was folded in"`
	Seams []domain.Seam `json:"seams" jsonschema_description:"Every face edge and the edge it is glued to"`
}

// Server exposes a solver as an MCP server.
type Server struct {
	solver    ports.Solver
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. Stdio servers must not log to stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver, opts ...Option) *Server {
	s := &Server{
		solver:    solver,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("cubewalk-mcp", strings.TrimSpace(cubewalk.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP endpoints over HTTP until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func puzzleOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("net", mcp.Required(), mcp.Description("The net, one row per line. '.' is open, '#' is a wall, ' ' is empty.")),
		mcp.WithString("path", mcp.Description("Instructions such as 10R5L5. May be empty.")),
		mcp.WithNumber("face_size", mcp.Description("Edge length of a face. Inferred from the tile count when omitted.")),
	}
}

func (s *Server) registerTools() {
	solveOpts := append(puzzleOptions(),
		mcp.WithDescription("Walk a path over a cube net and return the final pose and password."),
		mcp.WithString("mode", mcp.Description("flat, cube or both (default both)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(mcp.NewTool("solve_net", solveOpts...), mcp.NewStructuredToolHandler(s.handleSolve))

	seamOpts := append(puzzleOptions(),
		mcp.WithDescription("Fold a net and list which face edges are glued together."),
		mcp.WithString("mode", mcp.Description("flat or cube (default cube)")),
		mcp.WithOutputSchema[SeamsResponse](),
	)
	s.mcpServer.AddTool(mcp.NewTool("resolve_seams", seamOpts...), mcp.NewStructuredToolHandler(s.handleSeams))
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("cubewalk://modes", "Supported fold modes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(domain.Modes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode modes: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "cubewalk://modes",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) document(args PuzzleArgs) (*schema.Document, *domain.Puzzle, error) {
	net, err := runner.SanitizeInput(args.Net)
	if err != nil {
		s.logger.Warn("MCP: Input rejected", "error", err, "size", len(args.Net))
		return nil, nil, fmt.Errorf("input rejected: %w", err)
	}
	path, err := runner.SanitizeInput(args.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("input rejected: %w", err)
	}

	doc := &schema.Document{
		Mode:     args.Mode,
		FaceSize: args.FaceSize,
		Net:      schema.Rows(strings.Split(strings.TrimRight(net, "\n"), "\n")),
		Path:     strings.TrimSpace(path),
	}
	p, err := doc.Puzzle()
	if err != nil {
		return nil, nil, err
	}
	return doc, p, nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args PuzzleArgs) (SolveResponse, error) {
	doc, p, err := s.document(args)
	if err != nil {
		return SolveResponse{}, err
	}

	var resp SolveResponse
	for _, mode := range doc.Modes() {
		res, err := s.solver.Solve(ctx, p, mode)
		if err != nil {
			return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
		}
		resp.Results = append(resp.Results, res)
	}
	return resp, nil
}

func (s *Server) handleSeams(ctx context.Context, request mcp.CallToolRequest, args PuzzleArgs) (SeamsResponse, error) {
	_, p, err := s.document(args)
	if err != nil {
		return SeamsResponse{}, err
	}

	mode := domain.ModeCube
	if args.Mode != "" {
		if mode, err = domain.ParseMode(args.Mode); err != nil {
			return SeamsResponse{}, err
		}
	}

	seams, err := s.solver.Seams(ctx, p, mode)
	if err != nil {
		return SeamsResponse{}, fmt.Errorf("fold failed: %w", err)
	}
	return SeamsResponse{Mode: mode, Seams: seams}, nil
}

// Package gateway is the relay HTTP server: it accepts chat requests from
// the frontend, forwards them with the tool catalog to the downstream LLM
// server, and returns the assistant's final text. It also serves direct
// tool invocation and a health check.
package gateway

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/davral/llmrelay/internal/config"
	"github.com/davral/llmrelay/internal/llm"
	"github.com/davral/llmrelay/internal/logging"
	"github.com/davral/llmrelay/internal/tools"
)

// Server is the llmrelay HTTP server.
type Server struct {
	cfg     config.Config
	log     *logging.Logger
	llm     *llm.Client
	catalog *tools.Catalog

	httpServer *http.Server
}

// ServerOption configures the relay server.
type ServerOption func(*Server)

// WithLLM sets the downstream completions client for /api/chat handling.
func WithLLM(c *llm.Client) ServerOption {
	return func(s *Server) {
		s.llm = c
	}
}

// New creates a relay server around an immutable tool catalog.
func New(cfg config.Config, log *logging.Logger, catalog *tools.Catalog, opts ...ServerOption) *Server {
	s := &Server{
		cfg:     cfg,
		log:     log.Sub("gateway"),
		catalog: catalog,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the full HTTP handler: routes plus the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerHTTPRoutes(mux)
	return withMiddleware(mux, s.log, s.cfg.Server.AllowedOrigins)
}

// registerHTTPRoutes sets up all HTTP routes on the server mux.
func (s *Server) registerHTTPRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/tools/execute", s.handleToolExecute)

	// Catch-all for unknown routes
	mux.HandleFunc("/", handleNotFound)
}

// resolveBindAddr computes the listen address from config.
func resolveBindAddr(cfg config.ServerConfig) string {
	switch cfg.Bind {
	case "loopback":
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	case "lan", "auto":
		return fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	case "custom":
		host := cfg.CustomBindHost
		if host == "" {
			host = "0.0.0.0"
		}
		return fmt.Sprintf("%s:%d", host, cfg.Port)
	default:
		return fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	}
}

// Start begins listening for HTTP connections. It blocks until the context
// is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	addr := resolveBindAddr(s.cfg.Server)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
		BaseContext:  func(l net.Listener) context.Context { return ctx },
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	if s.cfg.Server.TLS.Enabled {
		cert, err := tls.LoadX509KeyPair(s.cfg.Server.TLS.CertPath, s.cfg.Server.TLS.KeyPath)
		if err != nil {
			ln.Close()
			return fmt.Errorf("loading TLS certificate: %w", err)
		}
		ln = tls.NewListener(ln, &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		})
		s.log.Info().Msg("TLS enabled")
	}

	s.log.Info().
		Str("addr", ln.Addr().String()).
		Str("bind", s.cfg.Server.Bind).
		Str("model", s.cfg.LLM.Model).
		Int("tools", s.catalog.Len()).
		Msg("relay server starting")

	// Shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down relay server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the server's listen address, or empty string if not started.
func (s *Server) Addr() string {
	if s.httpServer != nil {
		return s.httpServer.Addr
	}
	return ""
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// Server is the HTTP listener wrapped around a [Dispatcher].
type Server struct {
	httpServer      *http.Server
	addr            string
	shutdownTimeout time.Duration
	log             *zap.Logger
}

// NewServer wires the dispatcher into an HTTP server configured by cfg.
//
// Parameters:
//   - d: Dispatcher answering POST /mcp
//   - cfg: Configuration (defaults are used when nil)
//   - log: Structured logger (a no-op logger is used when nil)
//
// Returns:
//   - *Server: Ready to [Server.Serve]
func NewServer(d *Dispatcher, cfg *Config, log *zap.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		httpServer: &http.Server{
			Handler:           NewHTTPHandler(d, cfg, log),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		addr:            cfg.Addr(),
		shutdownTimeout: time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second,
		log:             log,
	}
}

// Serve listens on the configured address and blocks until ctx is done or
// the listener fails.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until ctx is done, then shuts down gracefully.
//
// Returns:
//   - nil: After a clean shutdown triggered by ctx
//   - error: If serving fails or in-flight requests outlive the shutdown timeout
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(ln)
	}()
	s.log.Info("GDS MCP server started", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down", zap.Duration("timeout", s.shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		<-errChan
		return nil
	}
}

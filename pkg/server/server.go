// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	cnserrors "github.com/NVIDIA/dashboard-audit/pkg/errors"
	"github.com/NVIDIA/dashboard-audit/pkg/serializer"
)

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported on the root route.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the version reported on the root route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithHandler adds routes. Later calls override earlier patterns.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for pattern, h := range handlers {
			s.config.Handlers[pattern] = h
		}
	}
}

// WithConfig replaces the whole configuration. Apply it before other
// options.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// Server is the HTTP API server.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// New builds a server from options. A root handler listing the routes is
// added unless one is registered for "/".
func New(opts ...Option) *Server {
	s := &Server{config: NewConfig()}
	for _, opt := range opts {
		opt(s)
	}
	if s.config.Handlers == nil {
		s.config.Handlers = map[string]http.HandlerFunc{}
	}
	if _, ok := s.config.Handlers["/"]; !ok {
		s.config.Handlers["/"] = s.handleRoot
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(s.config.Address, strconv.Itoa(s.config.Port)),
		Handler:           s.routes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// probes and metrics bypass the chain so they are never rate limited
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	for pattern, h := range s.config.Handlers {
		mux.HandleFunc(pattern, s.withMiddleware(pattern, h))
	}
	return mux
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	s.setReady(true)
	slog.Info("server listening",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", ln.Addr().String())

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		s.setReady(false)
		return err
	}
}

// Shutdown marks the server not ready and drains connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "timeout", s.config.ShutdownTimeout.String())
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server and stops it on SIGINT, SIGTERM or ctx
// cancellation.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("starting server",
		"name", s.config.Name,
		"version", s.config.Version,
		"address", s.httpServer.Addr,
		"rateLimit", float64(s.config.RateLimit),
		"rateLimitBurst", s.config.RateLimitBurst,
		"shutdownTimeout", s.config.ShutdownTimeout.String())

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}
	if r.URL.Path != "/" {
		WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
			"Route not found", false, map[string]any{"path": r.URL.Path})
		return
	}

	routes := make([]string, 0, len(s.config.Handlers)+3)
	for pattern := range s.config.Handlers {
		if pattern != "/" {
			routes = append(routes, pattern)
		}
	}
	routes = append(routes, "/health", "/ready", "/metrics")
	sort.Strings(routes)

	serializer.RespondJSON(w, http.StatusOK, struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes:    routes,
	})
}

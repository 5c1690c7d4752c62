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
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}))

	if s.config == nil {
		t.Fatal("expected config to be initialized")
	}
	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}
	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
	if s.isReady() {
		t.Error("expected server not to be ready before Start")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	w = httptest.NewRecorder()
	s.handleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := New()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
		expectedState  string
	}{
		{"ready state", true, http.StatusOK, "ready"},
		{"not ready state", false, http.StatusServiceUnavailable, "not_ready"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			w := httptest.NewRecorder()
			s.handleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if resp.Status != tt.expectedState {
				t.Errorf("expected status %q, got %q", tt.expectedState, resp.Status)
			}
		})
	}
}

func TestRateLimiting(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1
	cfg.Handlers = map[string]http.HandlerFunc{
		"/test": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	}

	s := New(WithConfig(cfg))
	handler := s.withMiddleware("/test", s.config.Handlers["/test"])

	w1 := httptest.NewRecorder()
	handler(w1, httptest.NewRequest(http.MethodGet, "/test", nil))
	if w1.Code != http.StatusOK {
		t.Errorf("expected first request to succeed, got %d", w1.Code)
	}

	w2 := httptest.NewRecorder()
	handler(w2, httptest.NewRequest(http.MethodGet, "/test", nil))
	if w2.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", w2.Code)
	}
	if w2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header to be set")
	}
}

func TestRoutes(t *testing.T) {
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/ping": func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "pong")
		},
	}))
	s.setReady(true)

	ts := httptest.NewServer(s.httpServer.Handler)
	defer ts.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/v1/ping", http.StatusOK, "pong"},
		{"/health", http.StatusOK, "healthy"},
		{"/ready", http.StatusOK, "ready"},
		{"/metrics", http.StatusOK, "dashaudit_http_requests_total"},
		{"/", http.StatusOK, "/v1/ping"},
		{"/nope", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(ts.URL + tt.path)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			if resp.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
			if !strings.Contains(string(body), tt.body) {
				t.Errorf("expected body to contain %q, got %s", tt.body, body)
			}
		})
	}
}

func TestRootHandlerMethodNotAllowed(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	s.config.Handlers["/"](w, httptest.NewRequest(http.MethodPost, "/", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
	if w.Header().Get("Allow") != http.MethodGet {
		t.Errorf("expected Allow header GET, got %q", w.Header().Get("Allow"))
	}
}

func TestPanicRecovery(t *testing.T) {
	s := New()

	w := httptest.NewRecorder()
	handler := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})
	handler(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d after panic recovery, got %d", http.StatusInternalServerError, w.Code)
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve port: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = freePort(t)
	cfg.ShutdownTimeout = 100 * time.Millisecond

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start(ctx)
	}()

	deadline := time.Now().Add(time.Second)
	for !s.isReady() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !s.isReady() {
		t.Fatal("server did not become ready")
	}

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ready", cfg.Port))
	if err != nil {
		t.Fatalf("ready request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected ready 200, got %d", resp.StatusCode)
	}

	cancel()

	select {
	case err := <-errChan:
		if err != nil {
			t.Errorf("expected clean shutdown, got error: %v", err)
		}
	case <-time.After(time.Second):
		t.Error("shutdown timed out")
	}
	if s.isReady() {
		t.Error("expected server not ready after shutdown")
	}
}

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/config"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/observability"
)

// Per-request override headers for the HTTP transport. They let one deployed
// adapter serve multiple BookStack instances, with credentials scoped to a
// single request.
const (
	HeaderBookStackURL         = "X-Bookstack-Url"
	HeaderBookStackTokenID     = "X-Bookstack-Token-Id"
	HeaderBookStackTokenSecret = "X-Bookstack-Token-Secret"
)

// maxMessageBytes bounds the accepted JSON-RPC message body.
const maxMessageBytes = 4 << 20

// runHTTP runs the server using the HTTP transport. Every POST /message
// builds an entirely fresh runtime scoped to that one request: fresh
// registries, fresh client, fresh everything. This is a deliberate isolation
// policy so per-request credentials never leak between sessions.
func (s *service) runHTTP(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.log.WithField("address", addr).Info("Running MCP server with HTTP transport")

	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Post("/message", s.handleMessage)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.httpServer.Shutdown(context.Background())
	case <-s.done:
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}

// handleHealth serves the aggregate health report.
func (s *service) handleHealth(w http.ResponseWriter, req *http.Request) {
	runtime := s.requestRuntime(req)
	report := runtime.Health.Check(req.Context())

	w.Header().Set("Content-Type", "application/json")

	if !report.Healthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(w).Encode(report)
}

// handleMessage processes one JSON-RPC message against a request-scoped
// server instance.
func (s *service) handleMessage(w http.ResponseWriter, req *http.Request) {
	sessionID := uuid.NewString()
	log := s.log.WithField("session", sessionID)

	observability.ActiveSessions.Inc()
	defer observability.ActiveSessions.Dec()

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Unhandled error processing message")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(req.Body, maxMessageBytes))
	if err != nil {
		log.WithError(err).Error("Failed to read request body")
		http.Error(w, "failed to read request body", http.StatusInternalServerError)

		return
	}

	runtime := s.requestRuntime(req)
	response := newMCPServer(runtime).HandleMessage(req.Context(), body)

	if response == nil {
		// Notification: nothing to send back.
		w.WriteHeader(http.StatusAccepted)

		return
	}

	encoded, err := json.Marshal(response)
	if err != nil {
		log.WithError(err).Error("Failed to encode response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(encoded)

	log.WithField("bytes", len(encoded)).Debug("Message handled")
}

// requestRuntime assembles a fresh runtime for one request, applying any
// override headers on top of the process configuration.
func (s *service) requestRuntime(req *http.Request) *Runtime {
	cfg := s.overrideConfig(req)

	return NewBuilder(s.requestLogger(req), cfg).Build()
}

// overrideConfig copies the process configuration and applies per-request
// BookStack connection overrides from headers.
func (s *service) overrideConfig(req *http.Request) *config.Config {
	cfg := *s.cfg

	if v := req.Header.Get(HeaderBookStackURL); v != "" {
		cfg.BookStack.URL = v
	}

	if v := req.Header.Get(HeaderBookStackTokenID); v != "" {
		cfg.BookStack.TokenID = v
	}

	if v := req.Header.Get(HeaderBookStackTokenSecret); v != "" {
		cfg.BookStack.TokenSecret = v
	}

	return &cfg
}

// requestLogger tags the logger with the remote address for request-scoped
// construction.
func (s *service) requestLogger(req *http.Request) logrus.FieldLogger {
	return s.log.WithField("remote", req.RemoteAddr)
}

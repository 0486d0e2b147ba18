// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the engine over HTTP: one POST endpoint that
// accepts a repository reference and responds with the DataCite XML.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/github-datacite/internal/cite"
	apierr "github.com/pdiddy/github-datacite/pkg/errors"
	"github.com/pdiddy/github-datacite/pkg/types"
)

// GenerateFunc produces the XML document for one request. Tests swap in
// a stub; production wiring builds a fresh client per request so no
// credentials outlive the call.
type GenerateFunc func(ctx context.Context, req types.GenerateRequest) (string, error)

// Server is the REST front end around the metadata mapper.
type Server struct {
	logger   *log.Logger
	generate GenerateFunc
}

// New creates a Server backed by the real engine.
func New(logger *log.Logger) *Server {
	return &Server{
		logger: logger,
		generate: func(ctx context.Context, req types.GenerateRequest) (string, error) {
			return cite.FromRequest(req).Generate(ctx, req.Identity())
		},
	}
}

// NewWithGenerator creates a Server with a custom generate function.
func NewWithGenerator(logger *log.Logger, generate GenerateFunc) *Server {
	return &Server{logger: logger, generate: generate}
}

// Router builds the chi router for the server.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/generate", s.handleGenerate)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		http.Error(w, "request must be JSON", http.StatusUnsupportedMediaType)
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RepoOwner == "" || req.RepoName == "" {
		http.Error(w, "owner and project are required", http.StatusBadRequest)
		return
	}
	req.ApplyDefaults()

	start := time.Now()
	xml, err := s.generate(r.Context(), req)
	if err != nil {
		status := statusForKind(apierr.KindOf(err))
		if ra := apierr.RetryAfterOf(err); ra > 0 {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(ra.Seconds())))
		}
		s.logger.Warn("generation failed",
			"repo", req.Identity().String(),
			"kind", string(apierr.KindOf(err)),
			"status", status,
			"err", err)
		http.Error(w, err.Error(), status)
		return
	}

	s.logger.Info("generated document",
		"repo", req.Identity().String(),
		"bytes", len(xml),
		"took", time.Since(start).Round(time.Millisecond))

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	fmt.Fprint(w, xml)
}

// statusForKind maps the engine's error taxonomy onto HTTP statuses.
func statusForKind(kind apierr.Kind) int {
	switch kind {
	case apierr.KindNotFound:
		return http.StatusNotFound
	case apierr.KindUnauthorized:
		return http.StatusUnauthorized
	case apierr.KindRateLimited:
		return http.StatusTooManyRequests
	case apierr.KindTransient:
		return http.StatusBadGateway
	case apierr.KindForkChainTooDeep, apierr.KindIncompleteForkChain:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Package server exposes the question store and answer parser over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/oops"

	"github.com/g5becks/desk/internal/question"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
)

type Options struct {
	PerPage int
	// StorePath, when set, is where the store is saved after every change.
	StorePath string
}

// Server is the HTTP API for desk.
type Server struct {
	router chi.Router
	store  *question.Store
	log    *slog.Logger
	opts   Options
}

func New(store *question.Store, log *slog.Logger, opts Options) *Server {
	if opts.PerPage <= 0 {
		opts.PerPage = question.DefaultPerPage
	}

	s := &Server{
		store: store,
		log:   log,
		opts:  opts,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", s.handleListQuestions)
		r.Post("/questions", s.handleAsk)
		r.Get("/questions/{id}", s.handleGetQuestion)
		r.Post("/questions/{id}/feedback", s.handleFeedback)
		r.Post("/parse", s.handleParse)
	})

	r.Get("/questions/{id}", s.handleQuestionPage)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting desk server", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return oops.
			Code("SERVER_ERROR").
			With("addr", addr).
			Wrapf(err, "serving http")
	case <-ctx.Done():
	}

	s.log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return oops.
			Code("SERVER_ERROR").
			Wrapf(err, "shutting down http server")
	}

	return nil
}

// persist saves the store after a change. On failure the change is still
// held in memory and reaches the file with the next successful save.
func (s *Server) persist() error {
	if s.opts.StorePath == "" {
		return nil
	}

	if err := s.store.Save(s.opts.StorePath); err != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			With("path", s.opts.StorePath).
			Hint("The change is kept in memory and is written by the next successful save").
			Wrapf(err, "saving question store")
	}

	return nil
}

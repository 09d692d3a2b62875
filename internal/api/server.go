// Package api serves the BODMAS tutoring REST API.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/stepwise-labs/bodmas/internal/tutor"
)

// Server is the tutoring API server.
type Server struct {
	catalog       *tutor.Catalog
	port          int
	questionsFile string
	watch         bool
	logger        *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Catalog       *tutor.Catalog
	Port          int
	QuestionsFile string
	Watch         bool
	Logger        *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		catalog:       cfg.Catalog,
		port:          cfg.Port,
		questionsFile: cfg.QuestionsFile,
		watch:         cfg.Watch,
		logger:        logger,
	}
}

// Serve starts the API server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := newRouter(NewHandlers(s.catalog, s.logger))

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Reload the question catalogue when its file changes
	if s.watch && s.questionsFile != "" {
		eg.Go(func() error {
			return s.watchQuestions(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// newRouter builds the chi mux with middleware and JSON fallbacks.
func newRouter(h *Handlers) *chi.Mux {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	h.Routes(r)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		h.writeError(w, http.StatusNotFound, "endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

// watchQuestions watches the questions file and reloads the catalogue on
// change. The parent directory is watched because editors often replace the
// file rather than writing it in place.
func (s *Server) watchQuestions(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(s.questionsFile)); err != nil {
		s.logger.Error("failed to watch questions file", "error", err)
		// Don't fail - continue without watching
		return nil
	}

	target := filepath.Clean(s.questionsFile)

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				if err := s.catalog.LoadFile(target); err != nil {
					s.logger.Error("questions reload failed", "file", target, "error", err)
					return
				}
				s.logger.Info("questions reloaded", "file", target)
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

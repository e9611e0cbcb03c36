// Package web is the page-based front end: a small chi server rendering
// the theme list, the study flow, and the statistics page. It drives
// the same session engine as the terminal front end and holds no study
// logic of its own.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mseguin/recallbox/internal/domain"
	"github.com/mseguin/recallbox/internal/domain/streak"
	"github.com/mseguin/recallbox/internal/pool"
	"github.com/mseguin/recallbox/internal/session"
	"github.com/mseguin/recallbox/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// themeSession pairs a running session with the result of the last
// graded answer and a token identifying this particular session run.
// The token is embedded in every form so a stale tab from an earlier
// session run cannot act on the current one.
type themeSession struct {
	token  uuid.UUID
	sess   *session.Session
	result *session.Result
}

// Server serves the web front end. One instance serves one local user;
// the mutex only guards against the same user double-submitting from
// two tabs, there is no multi-user support.
type Server struct {
	addr     string
	logger   *slog.Logger
	cards    map[string]domain.Card
	store    *store.Store
	saver    session.Saver
	selector *pool.Selector
	streak   streak.Service
	tmpl     *template.Template

	mu       sync.Mutex
	sessions map[string]*themeSession
}

// New builds a web server over the shared core services.
func New(
	addr string,
	cards map[string]domain.Card,
	st *store.Store,
	saver session.Saver,
	selector *pool.Selector,
	streakSvc streak.Service,
	logger *slog.Logger,
) (*Server, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"studyPath": studyPath}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Server{
		addr:     addr,
		logger:   logger.With(slog.String("component", "web")),
		cards:    cards,
		store:    st,
		saver:    saver,
		selector: selector,
		streak:   streakSvc,
		tmpl:     tmpl,
		sessions: make(map[string]*themeSession),
	}, nil
}

// Router assembles the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/stats", s.handleStats)
	r.Route("/study/{theme}", func(r chi.Router) {
		r.Get("/", s.handleStudy)
		r.Post("/hint", s.handleHint)
		r.Post("/answer", s.handleAnswer)
		r.Post("/next", s.handleNext)
		r.Post("/quit", s.handleQuit)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// ListenAndServe runs the server until the context is canceled, then
// shuts down gracefully and saves the store one last time.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web front end listening", slog.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down web server: %w", err)
	}
	if err := s.saver.Save(context.Background(), s.store.Snapshot()); err != nil {
		return fmt.Errorf("saving on shutdown: %w", err)
	}
	s.logger.Info("web front end stopped, progress saved")
	return nil
}

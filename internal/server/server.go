// Package server serves the fengshui toy to a browser.
//
// Each page load creates a board on the server. The page forwards pointer
// events to the board's press, move and release endpoints and redraws from
// the returned state, so the scoring and drag rules live in one place.
package server

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/matzehuels/fengshui/internal/config"
	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/observability"
	"github.com/matzehuels/fengshui/pkg/session"
)

//go:embed static/index.html
var static embed.FS

const shutdownTimeout = 5 * time.Second

// Server holds the boards and their settings.
type Server struct {
	cfg     config.Config
	scorer  *appeal.Scorer
	store   session.Store
	logger  *log.Logger
	metrics *Metrics
}

// New creates a server for cfg. A nil store uses an in-memory one.
func New(cfg config.Config, store session.Store, logger *log.Logger) *Server {
	if store == nil {
		store = session.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		cfg:     cfg,
		scorer:  appeal.New(cfg.Scoring),
		store:   store,
		logger:  logger,
		metrics: NewMetrics(),
	}
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", s.index)
	r.Get("/health", health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/boards", func(r chi.Router) {
		r.Post("/", s.createBoard)
		r.Route("/{boardID}", func(r chi.Router) {
			r.Get("/", s.getBoard)
			r.Delete("/", s.deleteBoard)
			r.Post("/press", s.press)
			r.Post("/move", s.move)
			r.Post("/release", s.release)
			r.Get("/svg", s.svg)
		})
	})

	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully. Expired boards are swept in the background meanwhile.
// While running, the server's metrics are added to the registered
// interaction hooks; the previous hooks are restored on return.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	prev := observability.Interaction()
	observability.SetInteractionHooks(observability.InteractionHooksList{prev, s.metrics})
	defer observability.SetInteractionHooks(prev)

	go s.sweep(ctx)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

// sweep removes expired boards until ctx ends.
func (s *Server) sweep(ctx context.Context) {
	t := time.NewTicker(s.cfg.Server.CleanupEvery.Duration)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("board cleanup failed", "err", err)
			}
		}
	}
}

package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"groupchat/internal/events"
)

const shutdownTimeout = 10 * time.Second

// Server defines fields used in HTTP processing
type Server struct {
	logger        *zap.SugaredLogger
	httpServer    *http.Server
	afterShutdown []func()
}

// NewServer returns new Server struct with provided zap.SugaredLogger and Store
func NewServer(logger *zap.SugaredLogger, store Store, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store must not be nil")
	}

	cfg := &config{
		httpServer:     &http.Server{Addr: "0.0.0.0:9000"},
		publisher:      events.Nop{},
		bodyLimit:      defaultBodyLimit,
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	h := &handler{
		logger:         logger,
		store:          store,
		publisher:      cfg.publisher,
		publishTimeout: cfg.publishTimeout,
		now:            cfg.now,
	}

	cfg.httpServer.Handler = routes(h, logger.Desugar(), cfg)

	return &Server{
		logger:        logger,
		httpServer:    cfg.httpServer,
		afterShutdown: cfg.afterShutdown,
	}, nil
}

func routes(h *handler, logger *zap.Logger, cfg *config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests(logger))
	for _, m := range cfg.middlewares {
		r.Use(m)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		jsonError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	withJSON := enforceJSON(cfg.bodyLimit)

	r.Route("/api", func(r chi.Router) {
		r.With(withJSON).Post("/auth/signup", h.signUp)
		r.With(withJSON).Post("/auth/signin", h.signIn)

		r.Get("/users", h.users)
		r.Get("/users/count", h.usersCount)
		r.Get("/users/online", h.onlineUsers)
		r.Get("/users/{id}", h.user)
		r.With(withJSON).Put("/users/{id}/profile", h.updateProfile)
		r.Post("/users/{id}/activity", h.userActivity)

		r.Get("/messages", h.messages)
		r.With(withJSON).Post("/messages", h.createMessage)
		r.Get("/messages/{id}", h.message)
		r.With(withJSON).Patch("/messages/{id}", h.updateMessage)
		r.With(withJSON).Delete("/messages/{id}", h.deleteMessage)

		r.Get("/chat/theme", h.activeTheme)
		r.Get("/chat/themes", h.themes)
		r.With(withJSON).Post("/chat/theme", h.setTheme)
	})

	return r
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start calls ListenAndServe on http.Server instance inside Server struct
// and implements graceful shutdown via goroutine waiting for signals
func (s *Server) Start() error {
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		s.logger.Info("Shutting down HTTP server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Errorf("srv.Shutdown: %v", err)
		}
		s.logger.Info("HTTP server is stopped")

		close(idleConnsClosed)
	}()

	s.logger.Infof("Starting HTTP server on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("s.httpServer.ListenAndServe: %w", err)
	}

	<-idleConnsClosed

	for _, f := range s.afterShutdown {
		f()
	}

	return nil
}

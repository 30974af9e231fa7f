package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"concierge/config"
	"concierge/pkg/models"
)

// Responder answers one chat transcript with a single assistant message.
// Both the heuristic and the LLM assistants satisfy it.
type Responder interface {
	Reply(ctx context.Context, messages []models.ChatMessage) (string, error)
}

type Server struct {
	responder Responder
	port      int
	logger    zerolog.Logger
	config    *config.Config
}

func NewServer(responder Responder, port int, logger zerolog.Logger, cfg *config.Config) *Server {
	return &Server{
		responder: responder,
		port:      port,
		logger:    logger,
		config:    cfg,
	}
}

func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Routes(),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		s.logger.Info().Msg("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	s.logger.Info().Int("port", s.port).Msg("starting API server")
	return srv.ListenAndServe()
}

// Routes builds the HTTP handler; exposed separately so tests can drive it
// through httptest without binding a port.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.With(s.authMiddleware).Post("/chat", s.handleChat)
	})

	return r
}

// authMiddleware rejects requests without a valid session token before the
// body is touched. The token arrives as a bearer Authorization header or a
// "session" cookie; validation delegates to the configured token set.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.config.ValidateSession(sessionToken(r)) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie("session"); err == nil {
		return cookie.Value
	}
	return ""
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		}()

		next.ServeHTTP(ww, r)
	})
}

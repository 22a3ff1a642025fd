// Package devserver is a stub of the job-board backend, good enough for
// local development and integration tests of the client core: it issues
// signed tokens, answers the profile endpoint and accepts push-token
// registrations.
package devserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jobfinder/config"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// Server is the stub backend.
type Server struct {
	echo   *echo.Echo
	cfg    *config.DevServerConfig
	logger *slog.Logger

	mu         sync.RWMutex
	byEmail    map[string]*account
	byID       map[string]*account
	pushTokens map[string]pushRegistration
}

type account struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
}

type pushRegistration struct {
	Token      string
	DeviceID   string
	Platform   string
	AppVersion string
}

// NewServer is the constructor for Server.
func NewServer(cfg *config.DevServerConfig, logger *slog.Logger) (*Server, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, errors.New("dev server secret must be provided")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.Validator = newValidator()

	srv := &Server{
		echo:       e,
		cfg:        cfg,
		logger:     logger,
		byEmail:    make(map[string]*account),
		byID:       make(map[string]*account),
		pushTokens: make(map[string]pushRegistration),
	}
	srv.registerRoutes(e)

	return srv, nil
}

func (s *Server) registerRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	v1.POST("/accounts/candidate/login", s.login)
	v1.GET("/accounts/me", s.me)
	v1.PATCH("/me/push-token", s.pushToken)
}

// Handler exposes the server as an http.Handler for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Serve starts the stub backend on the configured port.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.Port))
	s.logger.Info("Starting dev server", slog.String("hostPort", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve dev server")
	}

	return nil
}

// Shutdown stops the stub backend.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.logger.Info("Shutting down dev server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

func (s *Server) tokenTTL() time.Duration {
	if s.cfg.TokenTTL > 0 {
		return s.cfg.TokenTTL
	}

	return defaultTokenTTL
}

// PushRegistrations returns the registrations recorded for an account id,
// used by tests to observe the fire-and-forget sync.
func (s *Server) PushRegistrations(accountID string) (pushRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.pushTokens[accountID]

	return reg, ok
}

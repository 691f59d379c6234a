// Package server exposes the genealogy read API over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jkeenum/kindred-core/internal/application/handlers"
)

// Handlers bundles the application handlers the API serves.
type Handlers struct {
	Person       *handlers.PersonHandler
	Search       *handlers.SearchHandler
	Lineage      *handlers.LineageHandler
	Family       *handlers.FamilyHandler
	Tree         *handlers.TreeHandler
	Relationship *handlers.RelationshipHandler
}

// Server wraps the echo instance with the wired handlers.
type Server struct {
	echo     *echo.Echo
	handlers Handlers
}

// New creates a Server with standard middleware and all routes registered.
func New(h Handlers) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:     e,
		handlers: h,
	}
	s.registerRoutes()
	return s
}

// Start serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.echo.Shutdown(shutdownCtx)
}

// Echo exposes the underlying echo instance for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jkeenum/kindred-core/internal/domain/ports"
	"github.com/jkeenum/kindred-core/internal/domain/services"
)

func (s *Server) registerRoutes() {
	// Health check route
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := s.echo.Group("/api/genealogy")
	api.GET("/search", s.handleSearch)
	api.GET("/surnames", s.handleSurnames)
	api.GET("/person/:id", s.handlePerson)
	api.GET("/graph", s.handleGraph)
	api.GET("/relationships/:id", s.handleRelationships)
	api.GET("/lineage/:id", s.handleLineage)
	api.GET("/family/:id", s.handleFamily)
}

func (s *Server) handleSearch(c echo.Context) error {
	term := c.QueryParam("q")
	if strings.TrimSpace(term) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}

	limit, err := intParam(c, "limit", 20)
	if err != nil {
		return err
	}
	offset, err := intParam(c, "offset", 0)
	if err != nil {
		return err
	}

	result, err := s.handlers.Search.HandlePaged(c.Request().Context(), term, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleSurnames(c echo.Context) error {
	result, err := s.handlers.Person.HandleSurnames(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handlePerson(c echo.Context) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	person, err := s.handlers.Person.HandleDetail(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	return c.JSON(http.StatusOK, person)
}

func (s *Server) handleGraph(c echo.Context) error {
	opts := services.BuildOptions{
		IncludeAncestors:   boolParam(c, "ancestors", true),
		IncludeDescendants: boolParam(c, "descendants", true),
		SurnameFilter:      c.QueryParam("surname"),
	}

	if raw := c.QueryParam("root_id"); raw != "" {
		rootID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "root_id must be an integer")
		}
		opts.RootID = rootID
	}
	if raw := c.QueryParam("max_generations"); raw != "" {
		maxGenerations, err := strconv.Atoi(raw)
		if err != nil || maxGenerations < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "max_generations must be a non-negative integer")
		}
		opts.MaxGenerations = maxGenerations
	}

	result, err := s.handlers.Tree.Handle(c.Request().Context(), opts)
	if err != nil {
		var overBudget *services.OverBudgetError
		if errors.As(err, &overBudget) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, overBudget.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleRelationships(c echo.Context) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	edges, err := s.handlers.Relationship.HandleEdges(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, edges)
}

func (s *Server) handleLineage(c echo.Context) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.Lineage.Handle(c.Request().Context(), id, c.QueryParam("surname"))
	if err != nil {
		return notFoundOr(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleFamily(c echo.Context) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.Family.Handle(c.Request().Context(), id)
	if err != nil {
		return notFoundOr(err)
	}
	return c.JSON(http.StatusOK, result)
}

// personID parses the :id path parameter.
func personID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "person id must be an integer")
	}
	return id, nil
}

// notFoundOr maps missing-person errors to 404 and passes the rest through.
func notFoundOr(err error) error {
	if errors.Is(err, ports.ErrPersonNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}

// intParam reads a non-negative integer query parameter with a default.
func intParam(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return value, nil
}

// boolParam reads a boolean query parameter with a default.
func boolParam(c echo.Context, name string, fallback bool) bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

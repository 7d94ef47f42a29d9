package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getRunHandler handles GET /api/v1/runs/:id. The response carries the full
// stage history and validation chain, which is the primary debugging view.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID, err := parseID(c)
	if err != nil {
		return err
	}

	r, err := s.runService.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}
	stages, err := s.stageService.ListStages(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}
	validations, err := s.validationService.ListForRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &RunDetail{
		Run:         r,
		Stages:      stages,
		Validations: validations,
	})
}

package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// listTasksHandler handles GET /api/v1/tasks.
func (s *Server) listTasksHandler(c *echo.Context) error {
	limit, offset := parsePagination(c)
	tasks, total, err := s.taskService.ListTasks(c.Request().Context(), c.QueryParam("status"), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ListResponse{Items: tasks, Total: total})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	t, err := s.taskService.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	runs, err := s.runService.ListRunsForTask(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TaskDetail{Task: t, Runs: runs})
}

// listTaskRunsHandler handles GET /api/v1/tasks/:id/runs.
func (s *Server) listTaskRunsHandler(c *echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	runs, err := s.runService.ListRunsForTask(c.Request().Context(), taskID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ListResponse{Items: runs, Total: len(runs)})
}

// parseID reads the numeric :id path parameter.
func parseID(c *echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(c *echo.Context) (limit, offset int) {
	limit = 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

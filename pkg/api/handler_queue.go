package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeflow/forgeflow/pkg/services"
)

// queueStatusHandler handles GET /api/v1/queue.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	counts, err := s.queueService.CountByStatus(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	resp := &QueueStatusResponse{Counts: counts}
	if s.workerPool != nil {
		resp.Pool = s.workerPool.Health()
	}
	return c.JSON(http.StatusOK, resp)
}

// listQueueEntriesHandler handles GET /api/v1/queue/entries.
func (s *Server) listQueueEntriesHandler(c *echo.Context) error {
	limit, offset := parsePagination(c)
	entries, total, err := s.queueService.ListEntries(c.Request().Context(), c.QueryParam("status"), limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ListResponse{Items: entries, Total: total})
}

// cancelEntryHandler handles POST /api/v1/queue/entries/:id/cancel.
// Pending entries are cancelled in the database; running entries are
// interrupted through the worker pool on whichever pod claimed them.
func (s *Server) cancelEntryHandler(c *echo.Context) error {
	entryID := c.Param("id")
	if entryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entry id is required")
	}

	dbErr := s.queueService.Cancel(c.Request().Context(), entryID)

	// Always signal the pool too: the entry may be running on this pod, in
	// which case the executing goroutine's context is cancelled.
	poolCancelled := false
	if s.workerPool != nil {
		poolCancelled = s.workerPool.CancelEntry(entryID)
	}

	if dbErr != nil && !poolCancelled {
		if errors.Is(dbErr, services.ErrInvalidTransition) {
			return echo.NewHTTPError(http.StatusConflict, "entry is not pending and not running on this pod")
		}
		return mapServiceError(dbErr)
	}

	return c.JSON(http.StatusOK, &CancelEntryResponse{
		QueueID: entryID,
		Message: "Cancellation requested",
	})
}

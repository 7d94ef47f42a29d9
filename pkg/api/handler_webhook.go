package api

import (
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/forgeflow/forgeflow/ent/webhookevent"
	"github.com/forgeflow/forgeflow/pkg/models"
	"github.com/forgeflow/forgeflow/pkg/services"
)

// maxWebhookBodySize bounds the inbound webhook payload.
const maxWebhookBodySize = 1 << 20

// boardWebhookVerifyHandler handles GET /webhook/board. Some providers verify
// the endpoint with a GET carrying a challenge query parameter.
func (s *Server) boardWebhookVerifyHandler(c *echo.Context) error {
	if challenge := c.QueryParam("challenge"); challenge != "" {
		return c.JSON(http.StatusOK, &ChallengeResponse{Challenge: challenge})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// boardWebhookHandler handles POST /webhook/board.
//
// The raw event is persisted before any interpretation, so a crash after the
// 200 loses nothing: the startup replay re-routes persisted events that never
// reached an outcome. Challenge handshakes are echoed without persistence.
func (s *Server) boardWebhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodySize))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	var hook models.BoardWebhook
	if err := json.Unmarshal(body, &hook); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is not valid JSON")
	}

	if hook.IsChallenge() {
		return c.JSON(http.StatusOK, &ChallengeResponse{Challenge: hook.Challenge})
	}
	if hook.Event == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "payload has neither challenge nor event")
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request body is not a JSON object")
	}

	event, duplicate, err := s.webhookService.PersistEvent(c.Request().Context(), services.PersistEventInput{
		Source:          "board",
		EventType:       hook.Event.Type,
		ExternalEventID: hook.Event.EventID,
		Payload:         payload,
		Signature:       c.Request().Header.Get("Authorization"),
	})
	if err != nil {
		return mapServiceError(err)
	}
	if duplicate {
		// Redelivery of an already-handled event: acknowledge without
		// reprocessing so the provider stops retrying.
		return c.JSON(http.StatusOK, &WebhookResponse{
			Status:  "duplicate",
			Detail:  string(event.Outcome),
			EventID: event.ID,
		})
	}

	result, err := s.processor.Process(c.Request().Context(), event.ID, hook.Event)
	if err != nil {
		// The event row carries the error; the provider may redeliver.
		s.logger.Error("Webhook processing failed", "event_id", event.ID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "event persisted but processing failed")
	}

	resp := &WebhookResponse{
		Status:            string(result.Outcome),
		Classification:    string(result.Classification),
		Detail:            result.Detail,
		EventID:           event.ID,
		TaskID:            result.TaskID,
		RunID:             result.RunID,
		QueueID:           result.QueueID,
		RunningWorkflowID: result.RunningWorkflowID,
	}

	// Admitted-and-started answers 200; admitted-but-waiting answers 202 with
	// the queue placement.
	httpStatus := http.StatusOK
	if result.Outcome == webhookevent.OutcomeQueued {
		httpStatus = http.StatusAccepted
		resp.QueueInfo = &QueueInfo{
			QueueID:           result.QueueID,
			Position:          result.Position,
			RunningWorkflowID: result.RunningWorkflowID,
		}
	}
	return c.JSON(httpStatus, resp)
}

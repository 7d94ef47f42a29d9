package ingest

import (
	"strings"

	"github.com/forgeflow/forgeflow/pkg/models"
)

// Classify decides whether an inbound board event is actionable.
//
// An event is actionable when it names a board item and conveys either the
// initial description of the item or a free-text comment added by a human.
// Comments carrying the agent signature are persisted but never enqueued.
func Classify(event *models.BoardEvent) models.Classification {
	if event == nil || event.ItemID() == "" {
		return models.ClassIgnored
	}

	switch event.Type {
	case models.EventCreateItem:
		return models.ClassActionableNew

	case models.EventCreateUpdate:
		body := event.CommentBody()
		if strings.TrimSpace(body) == "" {
			return models.ClassIgnored
		}
		if IsAgentComment(body) {
			return models.ClassSelfAuthored
		}
		return models.ClassActionableComment

	default:
		// Column-value changes and everything else are bookkeeping, not work.
		return models.ClassIgnored
	}
}

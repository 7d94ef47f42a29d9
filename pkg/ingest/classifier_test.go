package ingest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forgeflow/forgeflow/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		event *models.BoardEvent
		want  models.Classification
	}{
		{
			name:  "nil event is ignored",
			event: nil,
			want:  models.ClassIgnored,
		},
		{
			name:  "event without an item id is ignored",
			event: &models.BoardEvent{Type: models.EventCreateItem},
			want:  models.ClassIgnored,
		},
		{
			name: "new item is actionable",
			event: &models.BoardEvent{
				Type:      models.EventCreateItem,
				PulseID:   json.Number("8231"),
				PulseName: "Add login endpoint",
			},
			want: models.ClassActionableNew,
		},
		{
			name: "human comment is actionable",
			event: &models.BoardEvent{
				Type:     models.EventCreateUpdate,
				PulseID:  json.Number("8231"),
				TextBody: "please also handle expired tokens",
			},
			want: models.ClassActionableComment,
		},
		{
			name: "blank comment is ignored",
			event: &models.BoardEvent{
				Type:     models.EventCreateUpdate,
				PulseID:  json.Number("8231"),
				TextBody: "   \n\t",
			},
			want: models.ClassIgnored,
		},
		{
			name: "signed comment is self-authored",
			event: &models.BoardEvent{
				Type:     models.EventCreateUpdate,
				PulseID:  json.Number("8231"),
				TextBody: Sign("Pull Request created", "ForgeFlow"),
			},
			want: models.ClassSelfAuthored,
		},
		{
			name: "html body is used when textBody is empty",
			event: &models.BoardEvent{
				Type:    models.EventCreateUpdate,
				PulseID: json.Number("8231"),
				Body:    "<p>looks wrong on mobile</p>",
			},
			want: models.ClassActionableComment,
		},
		{
			name: "column change is ignored",
			event: &models.BoardEvent{
				Type:    models.EventUpdateColumn,
				PulseID: json.Number("8231"),
			},
			want: models.ClassIgnored,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.event))
		})
	}
}

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "spanish description",
			text: "Por favor crear el endpoint de login para la aplicación",
			want: "es",
		},
		{
			name: "french description",
			text: "Veuillez ajouter une page de connexion pour les utilisateurs",
			want: "fr",
		},
		{
			name: "portuguese description",
			text: "Por favor adicionar um botão de logout para o painel",
			want: "pt",
		},
		{
			name: "english description",
			text: "Please add a new login endpoint with token refresh",
			want: "en",
		},
		{
			name: "empty text defaults to english",
			text: "",
			want: "en",
		},
		{
			name: "single stop word is not enough to override the default",
			text: "fix el bug",
			want: "en",
		},
		{
			name: "code-heavy text defaults to english",
			text: "GET /api/v1/items?limit=50 returns 500",
			want: "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.text))
		})
	}
}

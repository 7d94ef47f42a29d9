package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRepoURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare url",
			text: "Fix the flaky test in https://github.com/acme/payments please",
			want: "https://github.com/acme/payments",
		},
		{
			name: "first of several urls wins",
			text: "repo: https://github.com/acme/api, also see https://github.com/acme/docs",
			want: "https://github.com/acme/api",
		},
		{
			name: "url inside markdown link",
			text: "See [the repo](https://github.com/acme/web-app) for details",
			want: "https://github.com/acme/web-app",
		},
		{
			name: "dots and dashes in owner and name",
			text: "https://github.com/acme-corp/service.v2 needs a release",
			want: "https://github.com/acme-corp/service.v2",
		},
		{
			name: "no url",
			text: "the login button is broken on mobile",
			want: "",
		},
		{
			name: "non-github hosts are not matched",
			text: "https://gitlab.com/acme/api is the mirror",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRepoURL(tt.text))
		})
	}
}

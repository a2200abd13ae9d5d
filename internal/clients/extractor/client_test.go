package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finbrief/finbrief-backend/internal/logger"
	pkgerrors "github.com/finbrief/finbrief-backend/internal/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("EXTRACTOR_API_URL", srv.URL)
	t.Setenv("EXTRACTOR_API_KEY", "test-key")
	return NewClient(logger.NewNop())
}

func TestExtractSectionPlainText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://example.com/filing.htm", r.URL.Query().Get("url"))
		assert.Equal(t, "part1item2", r.URL.Query().Get("item"))
		assert.Equal(t, "test-key", r.URL.Query().Get("token"))
		_, _ = w.Write([]byte("Management discussion text."))
	})

	got, err := client.ExtractSection(context.Background(), "https://example.com/filing.htm", "part1item2")
	require.NoError(t, err)
	assert.Equal(t, "Management discussion text.", got)
}

func TestExtractSectionUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ExtractSection(context.Background(), "https://example.com/filing.htm", "part1item2")
	assert.ErrorIs(t, err, pkgerrors.ErrUpstream)
}

func TestNormalizeEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain_text",
			body: "Risk factors narrative.",
			want: "Risk factors narrative.",
		},
		{
			name: "json_text_key",
			body: `{"text":"Risk factors narrative."}`,
			want: "Risk factors narrative.",
		},
		{
			name: "json_content_key",
			body: `{"content":"Risk factors narrative."}`,
			want: "Risk factors narrative.",
		},
		{
			name: "json_section_key",
			body: `{"section":"Risk factors narrative."}`,
			want: "Risk factors narrative.",
		},
		{
			name: "json_without_known_key_passes_through",
			body: `{"other":"x"}`,
			want: `{"other":"x"}`,
		},
		{
			name: "json_key_not_a_string_passes_through",
			body: `{"text":{"nested":true}}`,
			want: `{"text":{"nested":true}}`,
		},
		{
			name: "json_array_passes_through",
			body: `["a","b"]`,
			want: `["a","b"]`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeEnvelope([]byte(tc.body)))
		})
	}
}

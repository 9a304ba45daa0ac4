package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/ecoverse/ecosort/internal/domain/analysis"
)

func candidateEnvelope(text string) map[string]any {
	return map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
}

func TestGenerateExtractsCandidateText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(candidateEnvelope(`{"disposal_method":"Recycle"}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "").WithBaseURL(srv.URL)
	out, err := c.Generate(context.Background(), "plastic bottle")
	require.NoError(t, err)
	assert.Equal(t, `{"disposal_method":"Recycle"}`, out)
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)

	// the item description must appear in the outbound prompt
	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	text := parts[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, "plastic bottle")
}

func TestGenerateMissingKey(t *testing.T) {
	c := NewClient("", "")
	_, err := c.Generate(context.Background(), "foo")
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient("test-key", "").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), "foo")
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewClient("test-key", "").WithBaseURL(srv.URL)
	_, err := c.Generate(context.Background(), "foo")
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

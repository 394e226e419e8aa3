package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientGenerateContent(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "```json\n"},
					{"text": `{"hotels": []}`},
				}}},
			},
		})
	}))
	defer ts.Close()

	client, err := NewClient("secret", ts.URL, "gemini-1.5-pro", 0.4)
	require.NoError(t, err)

	text, err := client.GenerateContent(context.Background(), "Suggest hotels")
	require.NoError(t, err)
	require.Equal(t, "/v1/models/gemini-1.5-pro:generateContent", gotPath)
	require.Equal(t, "secret", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Equal(t, "Suggest hotels", gotBody.Contents[0].Parts[0].Text)
	// Multiple candidate parts are concatenated.
	require.True(t, strings.HasPrefix(text, "```json"))
	require.Contains(t, text, `{"hotels": []}`)
}

func TestClientGenerateContentUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, err := NewClient("secret", ts.URL, "", 0)
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "Suggest hotels")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=429")
}

func TestClientGenerateContentEmptyCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer ts.Close()

	client, err := NewClient("secret", ts.URL, "", 0)
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "Suggest hotels")
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty completion")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("  ", "", "", 0)
	require.Error(t, err)
}

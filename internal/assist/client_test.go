package assist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pharmaflow/pharmaflow/internal/platform/httpx"
)

func TestGenerateText(t *testing.T) {
	var gotAuth string
	var gotReq generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/generate", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(generateResponse{Text: "Drafted email."})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")
	text, err := client.GenerateText(context.Background(), "Draft something.")
	require.NoError(t, err)
	require.Equal(t, "Drafted email.", text)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, defaultModel, gotReq.Model)
	require.Equal(t, "Draft something.", gotReq.Prompt)
}

func TestGenerateTextUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.GenerateText(context.Background(), "x")
	require.ErrorIs(t, err, httpx.ErrExternalService)
}

func TestGenerateTextMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.GenerateText(context.Background(), "x")
	require.ErrorIs(t, err, httpx.ErrExternalService)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, "").Ping(context.Background()))
}

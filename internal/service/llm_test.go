package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jruth44/kaizen-nutrition/config"
)

func testConfig(apiURL string) *config.Config {
	return &config.Config{
		AnthropicAPIKey: "test-api-key",
		AnthropicAPIURL: apiURL,
		AnthropicModel:  "test-model",
	}
}

func TestNewLLMService(t *testing.T) {
	t.Run("should create service with API key", func(t *testing.T) {
		svc, err := NewLLMService(testConfig("http://localhost"))

		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("should fail without API key", func(t *testing.T) {
		svc, err := NewLLMService(&config.Config{})

		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestLLMServiceComplete(t *testing.T) {
	t.Run("returns response text", func(t *testing.T) {
		var gotBody completionRequest
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("Anthropic-Version"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"content":[{"type":"text","text":"hello from the model"}]}`)
		}))
		defer ts.Close()

		svc, err := NewLLMService(testConfig(ts.URL))
		require.NoError(t, err)

		text, err := svc.Complete(context.Background(), "system prompt", "user prompt")

		require.NoError(t, err)
		assert.Equal(t, "hello from the model", text)
		assert.Equal(t, "test-model", gotBody.Model)
		assert.Equal(t, "system prompt", gotBody.System)
		require.Len(t, gotBody.Messages, 1)
		assert.Equal(t, "user", gotBody.Messages[0].Role)
		assert.Equal(t, "user prompt", gotBody.Messages[0].Content)
	})

	t.Run("returns error on non-200 status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"type":"rate_limit_error"}}`)
		}))
		defer ts.Close()

		svc, err := NewLLMService(testConfig(ts.URL))
		require.NoError(t, err)

		_, err = svc.Complete(context.Background(), "system", "prompt")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("returns error on malformed body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "not json")
		}))
		defer ts.Close()

		svc, err := NewLLMService(testConfig(ts.URL))
		require.NoError(t, err)

		_, err = svc.Complete(context.Background(), "system", "prompt")
		assert.Error(t, err)
	})

	t.Run("returns error on empty content", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"content":[]}`)
		}))
		defer ts.Close()

		svc, err := NewLLMService(testConfig(ts.URL))
		require.NoError(t, err)

		_, err = svc.Complete(context.Background(), "system", "prompt")
		assert.Error(t, err)
	})
}

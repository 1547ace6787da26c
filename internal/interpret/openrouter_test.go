package interpret

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		APIKey:  "test-key",
		Model:   "test/model",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, logging.NewNop())
	require.NoError(t, err)
	return client
}

func chatReply(content string) string {
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, _ := json.Marshal(reply)
	return string(data)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(ClientConfig{Model: "test/model"}, logging.NewNop())
	assert.Error(t, err)
}

func TestInterpret(t *testing.T) {
	var captured chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(`{"operation": "create_folder", "parameters": {"folder_name": "reports"}}`)))
	})

	plan, err := client.Interpret(context.Background(), "create folder reports")
	require.NoError(t, err)

	require.Len(t, plan.Operations, 1)
	assert.Equal(t, types.KindCreateFolder, plan.Operations[0].Kind)
	assert.Equal(t, "reports", plan.Operations[0].Param("folder_name"))

	assert.Equal(t, "test/model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "Command: create folder reports", captured.Messages[1].Content)
	assert.Zero(t, captured.Temperature)
}

func TestInterpretFencedReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("```json\n{\"operation\": \"play_movie\", \"parameters\": {\"movie_name\": \"Dune\"}}\n```")))
	})

	plan, err := client.Interpret(context.Background(), "play dune")
	require.NoError(t, err)
	assert.Equal(t, types.KindPlayBestMatch, plan.Operations[0].Kind)
}

func TestInterpretServiceError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"error": {"message": "model overloaded"}}`))
	})

	_, err := client.Interpret(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestInterpretNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Interpret(context.Background(), "anything")
	assert.Error(t, err)
}

func TestInterpretMalformedPlanReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply("I cannot help with that.")))
	})

	_, err := client.Interpret(context.Background(), "anything")
	assert.Error(t, err)
}

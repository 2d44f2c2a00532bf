package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reserva-eva/models"
)

func conciergeBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg.GeminiBaseURL = server.URL
	cfg.GeminiAPIKey = "test-key"
}

func TestAskConciergeRelaysText(t *testing.T) {
	newTestEnv()

	var gotBody map[string]interface{}
	conciergeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Olá! Como posso ajudar?"}]}}]}`))
	})

	resp := AskConcierge(models.ChatRequest{Message: "Oi, EVA"})
	assert.True(t, resp.Success)
	assert.Equal(t, "Olá! Como posso ajudar?", resp.Message)
	assert.NotEmpty(t, resp.SessionID, "a session id is assigned when the client sends none")

	// The persona instruction embeds the catalog
	instruction := gotBody["system_instruction"].(map[string]interface{})
	parts := instruction["parts"].([]interface{})
	text := parts[0].(map[string]interface{})["text"].(string)
	assert.Contains(t, text, "EVA")
	assert.Contains(t, text, "Azure Horizon Villa")

	generation := gotBody["generationConfig"].(map[string]interface{})
	assert.Equal(t, 0.7, generation["temperature"])
}

func TestAskConciergeReplaysHistory(t *testing.T) {
	newTestEnv()

	var gotBody map[string]interface{}
	conciergeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	})

	resp := AskConcierge(models.ChatRequest{
		SessionID: "s-1",
		Message:   "E aos sábados?",
		History: []models.ChatMessage{
			{Role: "user", Text: "Vocês abrem quando?"},
			{Role: "assistant", Text: "Aos fins de semana."},
		},
	})
	require.True(t, resp.Success)
	assert.Equal(t, "s-1", resp.SessionID)

	contents := gotBody["contents"].([]interface{})
	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].(map[string]interface{})["role"])
	assert.Equal(t, "model", contents[1].(map[string]interface{})["role"], "assistant turns map to the model role")
	assert.Equal(t, "user", contents[2].(map[string]interface{})["role"])
}

func TestAskConciergeFallbackOnServerError(t *testing.T) {
	newTestEnv()

	conciergeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	resp := AskConcierge(models.ChatRequest{SessionID: "s-1", Message: "Oi"})
	assert.False(t, resp.Success)
	assert.Equal(t, FallbackMessage, resp.Message)
}

func TestAskConciergeFallbackOnMalformedResponse(t *testing.T) {
	newTestEnv()

	conciergeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	resp := AskConcierge(models.ChatRequest{SessionID: "s-1", Message: "Oi"})
	assert.False(t, resp.Success)
	assert.Equal(t, FallbackMessage, resp.Message)
}

func TestAskConciergeFallbackOnUnreachableHost(t *testing.T) {
	newTestEnv()
	cfg.GeminiBaseURL = "http://127.0.0.1:1"

	resp := AskConcierge(models.ChatRequest{SessionID: "s-1", Message: "Oi"})
	assert.False(t, resp.Success)
	assert.Equal(t, FallbackMessage, resp.Message)
}

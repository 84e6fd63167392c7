package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fake Gemini API that records request bodies and answers with a fixed reply
type fakeGemini struct {
	mu     sync.Mutex
	bodies []map[string]any
	paths  []string
	reply  string
	status int
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)

	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.paths = append(f.paths, r.URL.Path)
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
		return
	}

	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": f.reply}},
				},
				"finishReason": "STOP",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func newTestGemini(t *testing.T, fake *fakeGemini) *GeminiClient {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), &genai.ClientConfig{
		Backend:     genai.BackendGeminiAPI,
		APIKey:      "test-key",
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	require.NoError(t, err)

	return client
}

func TestBuildHistory(t *testing.T) {
	history := buildHistory([]Message{
		{Role: "user", Content: "Hi"},
		{Role: "model", Content: "Hello"},
	})

	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "Hi", history[0].Parts[0].Text)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, "Hello", history[1].Parts[0].Text)
}

func TestGenerationConfig(t *testing.T) {
	cfg := generationConfig(DefaultGeminiParams)

	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.9, *cfg.Temperature, 1e-6)
	assert.InDelta(t, 0.8, *cfg.TopP, 1e-6)
	assert.InDelta(t, 40, *cfg.TopK, 1e-6)
	assert.Equal(t, int32(8192), cfg.MaxOutputTokens)
	assert.Equal(t, int32(1), cfg.CandidateCount)
}

func TestResponseText_Empty(t *testing.T) {
	_, err := responseText(nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{})
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestGeminiChat_SendsHistoryAndPrompt(t *testing.T) {
	fake := &fakeGemini{reply: "I'm well, thanks."}
	client := newTestGemini(t, fake)

	text, err := client.Chat(context.Background(), ChatRequest{
		Model: "gemini-1.0-pro",
		History: []Message{
			{Role: "user", Content: "Hi"},
			{Role: "model", Content: "Hello"},
		},
		Prompt: "How are you?",
		Params: DefaultGeminiParams,
	})

	require.NoError(t, err)
	assert.Equal(t, "I'm well, thanks.", text)

	require.Len(t, fake.bodies, 1)
	assert.True(t, strings.HasSuffix(fake.paths[0], "gemini-1.0-pro:generateContent"), fake.paths[0])

	contents := fake.bodies[0]["contents"].([]any)
	require.Len(t, contents, 3)

	last := contents[2].(map[string]any)
	assert.Equal(t, "user", last["role"])
	assert.Equal(t, "How are you?", last["parts"].([]any)[0].(map[string]any)["text"])
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])

	genCfg := fake.bodies[0]["generationConfig"].(map[string]any)
	assert.InDelta(t, 0.9, genCfg["temperature"], 1e-6)
	assert.EqualValues(t, 8192, genCfg["maxOutputTokens"])
}

func TestGeminiGenerateText(t *testing.T) {
	fake := &fakeGemini{reply: "SELECT * FROM `ck-vertex.bq_llm.users`"}
	client := newTestGemini(t, fake)

	text, err := client.GenerateText(context.Background(), TextRequest{
		Model:  SQLModel,
		Prompt: "all users",
		Params: SQLParams,
	})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM `ck-vertex.bq_llm.users`", text)

	genCfg := fake.bodies[0]["generationConfig"].(map[string]any)
	assert.InDelta(t, 0.2, genCfg["temperature"], 1e-6)
}

func TestGeminiChat_UpstreamFailure(t *testing.T) {
	fake := &fakeGemini{status: http.StatusInternalServerError}
	client := newTestGemini(t, fake)

	_, err := client.Chat(context.Background(), ChatRequest{
		Model:  "gemini-1.0-pro",
		Prompt: "hi",
		Params: DefaultGeminiParams,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini: send message")
}

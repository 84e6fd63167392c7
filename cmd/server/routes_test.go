package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/vertexgate/server/internal/config"
	"codeberg.org/vertexgate/server/internal/llm"
)

type fakeLLM struct{}

func (fakeLLM) Chat(context.Context, llm.ChatRequest) (string, error) { return "gemini reply", nil }

func (fakeLLM) ChatBison(context.Context, llm.BisonRequest) (string, error) {
	return "bison reply", nil
}

func (fakeLLM) GenerateText(context.Context, llm.TextRequest) (string, error) {
	return "SELECT 1", nil
}

type fakeSearcher struct{}

func (fakeSearcher) Search(context.Context, string, string) ([]byte, error) {
	return []byte(`{"results":[]}`), nil
}

func newTestServer(t *testing.T, origins ...string) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prompts, err := config.LoadPrompts("")
	require.NoError(t, err)

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	cfg := &config.Config{
		Project:        "test-project",
		Location:       "us-central1",
		SearchLocation: "global",
		Environment:    "development",
		AllowedOrigins: origins,
	}

	return newServerWithServices(cfg, &Services{
		Gemini:   fakeLLM{},
		Bison:    fakeLLM{},
		SQL:      fakeLLM{},
		Searcher: fakeSearcher{},
		Prompts:  prompts,
	})
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestRoutes_Registered(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/ping", "", http.StatusOK},
		{http.MethodGet, "/docs/swagger.json", "", http.StatusOK},
		{http.MethodPost, "/chat/gemini-pro", `{"model_name":"gemini-1.0-pro","messages":[{"role":"user","content":"hi"}]}`, http.StatusOK},
		{http.MethodPost, "/chat/bison", `{"messages":[{"role":"user","content":"hi"}]}`, http.StatusOK},
		{http.MethodPost, "/chat/gemini-pro-v", `{}`, http.StatusNotImplemented},
		{http.MethodPost, "/sql", `{"query":"one"}`, http.StatusOK},
		{http.MethodGet, "/search?query=q&engine=e", "", http.StatusOK},
		{http.MethodGet, "/search?engine=e", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")

		w := serve(srv, req)

		assert.Equal(t, tt.status, w.Code, "%s %s: %s", tt.method, tt.path, w.Body.String())
	}
}

func TestRoutes_PreflightWithAndWithoutOrigin(t *testing.T) {
	srv := newTestServer(t)

	for _, origin := range []string{"", "https://client.example"} {
		for _, path := range []string{"/chat/gemini-pro", "/chat/bison", "/chat/gemini-pro-v", "/sql"} {
			req := httptest.NewRequest(http.MethodOptions, path, nil)
			if origin != "" {
				req.Header.Set("Origin", origin)
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}

			w := serve(srv, req)

			assert.Equal(t, http.StatusNoContent, w.Code, path)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
			assert.Equal(t, "GET", w.Header().Get("Access-Control-Allow-Methods"), path)
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"), path)
			assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"), path)
		}
	}
}

func TestRoutes_RequestID(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = serve(srv, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestRoutes_SwaggerDocument(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/docs/swagger.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc["swagger"])
}

func TestAllowsAnyOrigin(t *testing.T) {
	assert.True(t, allowsAnyOrigin(nil))
	assert.True(t, allowsAnyOrigin([]string{"*"}))
	assert.True(t, allowsAnyOrigin([]string{"https://a.example", "*"}))
	assert.False(t, allowsAnyOrigin([]string{"https://a.example"}))
}

func TestRoutes_RestrictedOrigins(t *testing.T) {
	srv := newTestServer(t, "https://allowed.example")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://allowed.example")
	w := serve(srv, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.example")
	w = serve(srv, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutes_RestrictedOriginsPreflight(t *testing.T) {
	srv := newTestServer(t, "https://allowed.example")

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/chat/gemini-pro", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		}
		return serve(srv, req)
	}

	w := preflight("https://allowed.example")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://allowed.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))

	w = preflight("https://other.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// without an Origin header the static response applies
	w = preflight("")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

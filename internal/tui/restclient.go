package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"codeberg.org/vertexgate/server/internal/search"
)

const (
	defaultEndpoint = "http://localhost:8080"

	// timeout for gateway requests
	requestTimeout = 120 * time.Second
)

// manages HTTP requests to the gateway REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// creates a client for endpoint, falling back to VERTEXGATE_ENDPOINT and then localhost
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = os.Getenv("VERTEXGATE_ENDPOINT")
	}

	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// sends the transcript to /chat/gemini-pro
func (c *Client) Gemini(ctx context.Context, model string, messages []Message) (string, error) {
	payload := geminiRequest{ModelName: model, Messages: messages}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/gemini-pro", payload, &resp); err != nil {
		return "", err
	}

	return resp.Content, nil
}

// sends the transcript to /chat/bison
func (c *Client) Bison(ctx context.Context, messages []Message) (string, error) {
	payload := bisonRequest{Messages: messages}

	var resp chatResponse
	if err := c.postJSON(ctx, "/chat/bison", payload, &resp); err != nil {
		return "", err
	}

	return resp.Content, nil
}

// turns a question into a SQL statement via /sql
func (c *Client) SQL(ctx context.Context, query string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/sql", sqlRequest{Query: query})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(body)), nil
}

// queries a search engine via /search
func (c *Client) Search(ctx context.Context, engine, query string) (*search.Response, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("engine", engine)

	body, err := c.do(ctx, http.MethodGet, "/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var resp search.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%s (%d)", errResp.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// REST API request/response types

type geminiRequest struct {
	ModelName string    `json:"model_name"`
	Messages  []Message `json:"messages"`
}

type bisonRequest struct {
	Messages []Message `json:"messages"`
}

type sqlRequest struct {
	Query string `json:"query"`
}

type chatResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

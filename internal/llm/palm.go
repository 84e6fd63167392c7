package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/vertexgate/server/internal/gcp"
)

// talks to the chat-bison REST predict endpoint on Vertex AI
type PaLMClient struct {
	baseURL    string
	project    string
	location   string
	httpClient *http.Client
}

type PaLMOption func(*PaLMClient)

func WithPaLMBaseURL(baseURL string) PaLMOption {
	return func(c *PaLMClient) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// the client must attach credentials; see gcp.DefaultHTTPClient
func WithPaLMHTTPClient(httpClient *http.Client) PaLMOption {
	return func(c *PaLMClient) {
		c.httpClient = httpClient
	}
}

type bisonPredictRequest struct {
	Instances  []bisonInstance  `json:"instances"`
	Parameters bisonParameters `json:"parameters"`
}

type bisonInstance struct {
	Context  string         `json:"context,omitempty"`
	Examples []bisonExample `json:"examples,omitempty"`
	Messages []bisonMessage `json:"messages"`
}

type bisonExample struct {
	Input  bisonContent `json:"input"`
	Output bisonContent `json:"output"`
}

type bisonContent struct {
	Content string `json:"content"`
}

type bisonMessage struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type bisonParameters struct {
	CandidateCount  int32   `json:"candidateCount"`
	MaxOutputTokens int32   `json:"maxOutputTokens"`
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            int32   `json:"topK"`
}

type bisonPredictResponse struct {
	Predictions []struct {
		Candidates []bisonMessage `json:"candidates"`
	} `json:"predictions"`
}

func NewPaLMClient(project, location string, opts ...PaLMOption) (*PaLMClient, error) {
	project = strings.TrimSpace(project)
	location = strings.TrimSpace(location)

	if project == "" {
		return nil, fmt.Errorf("palm: project must not be empty")
	}

	if location == "" {
		return nil, fmt.Errorf("palm: location must not be empty")
	}

	c := &PaLMClient{
		baseURL:  fmt.Sprintf("https://%s-aiplatform.googleapis.com", location),
		project:  project,
		location: location,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *PaLMClient) predictURL() string {
	return fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		c.baseURL, c.project, c.location, BisonModel)
}

// seeds a chat-bison session with context, examples and history, then sends the prompt
func (c *PaLMClient) ChatBison(ctx context.Context, req BisonRequest) (string, error) {
	messages := make([]bisonMessage, 0, len(req.History)+1)
	for _, msg := range req.History {
		messages = append(messages, bisonMessage{Author: msg.Role, Content: msg.Content})
	}
	messages = append(messages, bisonMessage{Author: RoleUser, Content: req.Prompt})

	examples := make([]bisonExample, 0, len(req.Examples))
	for _, ex := range req.Examples {
		examples = append(examples, bisonExample{
			Input:  bisonContent{Content: ex.Input},
			Output: bisonContent{Content: ex.Output},
		})
	}

	payload := bisonPredictRequest{
		Instances: []bisonInstance{{
			Context:  req.Context,
			Examples: examples,
			Messages: messages,
		}},
		Parameters: bisonParameters{
			CandidateCount:  req.Params.CandidateCount,
			MaxOutputTokens: req.Params.MaxOutputTokens,
			Temperature:     req.Params.Temperature,
			TopP:            req.Params.TopP,
			TopK:            req.Params.TopK,
		},
	}

	raw, err := gcp.PostJSON(ctx, c.httpClient, c.predictURL(), payload)
	if err != nil {
		return "", fmt.Errorf("palm: predict request failed: %w", err)
	}

	var resp bisonPredictResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("palm: decode response: %w", err)
	}

	if len(resp.Predictions) == 0 || len(resp.Predictions[0].Candidates) == 0 {
		return "", fmt.Errorf("palm: %w", ErrEmptyResponse)
	}

	text := resp.Predictions[0].Candidates[0].Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("palm: %w", ErrEmptyResponse)
	}

	return text, nil
}

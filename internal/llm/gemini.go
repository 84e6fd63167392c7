package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// talks to Gemini models through the genai SDK
type GeminiClient struct {
	client *genai.Client
}

// creates a Gemini client on the Vertex AI backend
func NewVertexGeminiClient(ctx context.Context, project, location string) (*GeminiClient, error) {
	return NewGeminiClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  project,
		Location: location,
	})
}

// creates a Gemini client from an explicit SDK configuration
func NewGeminiClient(ctx context.Context, cfg *genai.ClientConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// starts a chat seeded with req.History and sends req.Prompt
func (g *GeminiClient) Chat(ctx context.Context, req ChatRequest) (string, error) {
	chat, err := g.client.Chats.Create(ctx, req.Model, generationConfig(req.Params), buildHistory(req.History))
	if err != nil {
		return "", fmt.Errorf("gemini: create chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: req.Prompt})
	if err != nil {
		return "", fmt.Errorf("gemini: send message: %w", err)
	}

	return responseText(resp)
}

// sends a single prompt without history
func (g *GeminiClient) GenerateText(ctx context.Context, req TextRequest) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), generationConfig(req.Params))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	return responseText(resp)
}

// roles must already be normalized to user/model
func buildHistory(messages []Message) []*genai.Content {
	history := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		history = append(history, genai.NewContentFromText(msg.Content, genai.Role(msg.Role)))
	}

	return history
}

func generationConfig(p ResolvedParams) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.Temperature),
		TopP:            genai.Ptr(p.TopP),
		TopK:            genai.Ptr(float32(p.TopK)),
		MaxOutputTokens: p.MaxOutputTokens,
		CandidateCount:  p.CandidateCount,
	}
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini: %w (finish reason %q)", ErrEmptyResponse, string(resp.Candidates[0].FinishReason))
	}

	return text, nil
}

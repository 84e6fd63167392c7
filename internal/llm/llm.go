package llm

import (
	"context"
	"fmt"
	"net/http"

	"codeberg.org/vertexgate/server/internal/config"
)

// combines the Gemini and chat-bison clients into a single LLM
type CompositeLLM struct {
	*GeminiClient
	*PaLMClient
}

// creates both model clients for the configured project and region
func NewLLMWithConfig(ctx context.Context, cfg *config.Config, httpClient *http.Client) (*CompositeLLM, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	gemini, err := NewVertexGeminiClient(ctx, cfg.Project, cfg.Location)
	if err != nil {
		return nil, err
	}

	palm, err := NewPaLMClient(cfg.Project, cfg.Location, WithPaLMHTTPClient(httpClient))
	if err != nil {
		return nil, err
	}

	return &CompositeLLM{
		GeminiClient: gemini,
		PaLMClient:   palm,
	}, nil
}

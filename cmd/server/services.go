package main

import (
	"context"
	"fmt"

	"codeberg.org/vertexgate/server/internal/config"
	"codeberg.org/vertexgate/server/internal/gcp"
	"codeberg.org/vertexgate/server/internal/llm"
	"codeberg.org/vertexgate/server/internal/logger"
	"codeberg.org/vertexgate/server/internal/search"
)

// creates and configures all service clients
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	prompts, err := config.LoadPrompts(cfg.PromptsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts: %w", err)
	}

	httpClient, err := gcp.DefaultHTTPClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create google credentials: %w", err)
	}

	llmClient, err := llm.NewLLMWithConfig(ctx, cfg, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	searchClient, err := search.NewClient(cfg.Project, cfg.SearchLocation, search.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}

	logger.Info("services initialized",
		"project", cfg.Project,
		"vertex_location", cfg.Location,
		"search_location", cfg.SearchLocation,
		"custom_prompts", cfg.PromptsPath != "",
	)

	return &Services{
		Gemini:   llmClient,
		Bison:    llmClient,
		SQL:      llmClient,
		Searcher: searchClient,
		Prompts:  prompts,
	}, nil
}

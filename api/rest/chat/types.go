package chat

import "codeberg.org/vertexgate/server/internal/llm"

// request payload for /chat/gemini-pro; the last message is the prompt
type GeminiRequest struct {
	Messages  []llm.Message `json:"messages"`
	ModelName string        `json:"model_name" example:"gemini-1.0-pro" enums:"gemini-1.0-pro,gemini-1.5-pro"`
	llm.GenerationParams
}

// request payload for /chat/bison; the last message is the prompt
type BisonRequest struct {
	Messages []llm.Message `json:"messages"`
	llm.GenerationParams
}

// model reply
type Response struct {
	Role    string `json:"role" example:"model"`
	Content string `json:"content"`
}

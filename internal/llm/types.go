package llm

import (
	"context"
	"errors"
)

// conversation roles accepted from clients
const (
	RoleUser      = "user"
	RoleModel     = "model"
	RoleAssistant = "assistant"
)

// supported values of the model_name request field
type ModelName string

const (
	ModelGemini10Pro ModelName = "gemini-1.0-pro"
	ModelGemini15Pro ModelName = "gemini-1.5-pro"
)

const (
	// model used for natural language to SQL generation
	SQLModel = "gemini-1.0-pro"

	// PaLM chat model behind /chat/bison
	BisonModel = "chat-bison-32k"
)

var (
	ErrNoMessages       = errors.New("messages must contain at least one turn")
	ErrUnsupportedModel = errors.New("unsupported model_name")
	ErrUnsupportedRole  = errors.New("unsupported message role")
	ErrEmptyResponse    = errors.New("model returned no text")
)

// one conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// optional generation parameters; nil means "use the route default"
type GenerationParams struct {
	Temperature     *float32 `json:"temperature,omitempty"`
	TopP            *float32 `json:"top_p,omitempty"`
	TopK            *int32   `json:"top_k,omitempty"`
	MaxOutputTokens *int32   `json:"max_output_tokens,omitempty"`
	CandidateCount  *int32   `json:"candidate_count,omitempty"`
}

// concrete parameters sent to a model
type ResolvedParams struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
	CandidateCount  int32
}

// route defaults
var (
	DefaultGeminiParams = ResolvedParams{
		MaxOutputTokens: 8192,
		Temperature:     0.9,
		TopP:            0.8,
		TopK:            40,
		CandidateCount:  1,
	}

	DefaultBisonParams = ResolvedParams{
		CandidateCount:  1,
		MaxOutputTokens: 1024,
		Temperature:     0.4,
		TopP:            0.8,
		TopK:            40,
	}

	SQLParams = ResolvedParams{
		MaxOutputTokens: 8192,
		Temperature:     0.2,
		TopP:            0.8,
		TopK:            40,
		CandidateCount:  1,
	}
)

// a chat turn sent to a Gemini model
type ChatRequest struct {
	Model   string
	History []Message
	Prompt  string
	Params  ResolvedParams
}

// a single-shot prompt sent to a Gemini model
type TextRequest struct {
	Model  string
	Prompt string
	Params ResolvedParams
}

// input/output pair seeding a chat-bison session
type Example struct {
	Input  string
	Output string
}

// a chat turn sent to chat-bison
type BisonRequest struct {
	Context  string
	Examples []Example
	History  []Message
	Prompt   string
	Params   ResolvedParams
}

// continues a multi-turn Gemini conversation
type ChatModel interface {
	Chat(ctx context.Context, req ChatRequest) (string, error)
}

// generates text from a single prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextRequest) (string, error)
}

// continues a chat-bison conversation
type BisonChatModel interface {
	ChatBison(ctx context.Context, req BisonRequest) (string, error)
}

// every model the server talks to
type LLM interface {
	ChatModel
	TextGenerator
	BisonChatModel
}

package llm

import "fmt"

var modelIDs = map[ModelName]string{
	ModelGemini10Pro: "gemini-1.0-pro",
	ModelGemini15Pro: "gemini-1.5-pro-preview-0409",
}

// maps a client-facing model name to the Vertex AI model id
func ResolveModel(name string) (string, error) {
	id, ok := modelIDs[ModelName(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnsupportedModel, name, ModelGemini10Pro, ModelGemini15Pro)
	}

	return id, nil
}

// splits messages into the prior history and the final prompt
func SplitTurns(messages []Message) ([]Message, string, error) {
	if len(messages) == 0 {
		return nil, "", ErrNoMessages
	}

	last := len(messages) - 1
	history := make([]Message, last)
	copy(history, messages[:last])

	return history, messages[last].Content, nil
}

// rewrites roles for Gemini; "assistant" becomes "model"
func NormalizeRoles(messages []Message) ([]Message, error) {
	out := make([]Message, 0, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case RoleUser, RoleModel:
			out = append(out, msg)
		case RoleAssistant:
			out = append(out, Message{Role: RoleModel, Content: msg.Content})
		default:
			return nil, fmt.Errorf("%w: %q at messages[%d]", ErrUnsupportedRole, msg.Role, i)
		}
	}

	return out, nil
}

// fills every absent parameter from defaults
func (p GenerationParams) Resolve(defaults ResolvedParams) ResolvedParams {
	out := defaults

	if p.Temperature != nil {
		out.Temperature = *p.Temperature
	}

	if p.TopP != nil {
		out.TopP = *p.TopP
	}

	if p.TopK != nil {
		out.TopK = *p.TopK
	}

	if p.MaxOutputTokens != nil {
		out.MaxOutputTokens = *p.MaxOutputTokens
	}

	if p.CandidateCount != nil {
		out.CandidateCount = *p.CandidateCount
	}

	return out
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"gemini 1.0", "gemini-1.0-pro", "gemini-1.0-pro", false},
		{"gemini 1.5 maps to preview", "gemini-1.5-pro", "gemini-1.5-pro-preview-0409", false},
		{"empty", "", "", true},
		{"unknown", "gemini-ultra", "", true},
		{"raw vertex id is not a client name", "gemini-1.5-pro-preview-0409", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveModel(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedModel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTurns_LastMessageIsPrompt(t *testing.T) {
	messages := []Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello"},
		{Role: "user", Content: "How are you?"},
	}

	history, prompt, err := SplitTurns(messages)

	require.NoError(t, err)
	assert.Equal(t, "How are you?", prompt)
	require.Len(t, history, 2)
	assert.Equal(t, "Hi", history[0].Content)
	assert.Equal(t, "Hello", history[1].Content)
}

func TestSplitTurns_SingleMessage(t *testing.T) {
	history, prompt, err := SplitTurns([]Message{{Role: "user", Content: "only"}})

	require.NoError(t, err)
	assert.Equal(t, "only", prompt)
	assert.Empty(t, history)
	assert.NotNil(t, history)
}

func TestSplitTurns_Empty(t *testing.T) {
	_, _, err := SplitTurns(nil)

	assert.ErrorIs(t, err, ErrNoMessages)
}

func TestSplitTurns_DoesNotAliasInput(t *testing.T) {
	messages := []Message{{Role: "user", Content: "a"}, {Role: "user", Content: "b"}}

	history, _, err := SplitTurns(messages)
	require.NoError(t, err)

	history[0].Content = "changed"
	assert.Equal(t, "a", messages[0].Content)
}

func TestNormalizeRoles(t *testing.T) {
	out, err := NormalizeRoles([]Message{
		{Role: "user", Content: "Hi"},
		{Role: "assistant", Content: "Hello"},
		{Role: "model", Content: "Again"},
	})

	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Role: "user", Content: "Hi"},
		{Role: "model", Content: "Hello"},
		{Role: "model", Content: "Again"},
	}, out)
}

func TestNormalizeRoles_RejectsUnknownRole(t *testing.T) {
	_, err := NormalizeRoles([]Message{{Role: "system", Content: "x"}})

	require.ErrorIs(t, err, ErrUnsupportedRole)
	assert.Contains(t, err.Error(), `"system"`)
	assert.Contains(t, err.Error(), "messages[0]")
}

func TestResolve_AbsentUsesDefaults(t *testing.T) {
	got := GenerationParams{}.Resolve(DefaultGeminiParams)

	assert.Equal(t, DefaultGeminiParams, got)
	assert.InDelta(t, 0.9, got.Temperature, 1e-6)
	assert.Equal(t, int32(8192), got.MaxOutputTokens)
}

func TestResolve_ExplicitZeroIsKept(t *testing.T) {
	zero := float32(0)
	one := int32(1)

	got := GenerationParams{Temperature: &zero, TopK: &one}.Resolve(DefaultBisonParams)

	assert.Equal(t, float32(0), got.Temperature)
	assert.Equal(t, int32(1), got.TopK)
	assert.Equal(t, DefaultBisonParams.TopP, got.TopP)
	assert.Equal(t, int32(1024), got.MaxOutputTokens)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, ResolvedParams{MaxOutputTokens: 8192, Temperature: 0.9, TopP: 0.8, TopK: 40, CandidateCount: 1}, DefaultGeminiParams)
	assert.Equal(t, ResolvedParams{MaxOutputTokens: 1024, Temperature: 0.4, TopP: 0.8, TopK: 40, CandidateCount: 1}, DefaultBisonParams)
	assert.Equal(t, ResolvedParams{MaxOutputTokens: 8192, Temperature: 0.2, TopP: 0.8, TopK: 40, CandidateCount: 1}, SQLParams)
}

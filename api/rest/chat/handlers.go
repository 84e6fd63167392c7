package chat

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/internal/config"
	"codeberg.org/vertexgate/server/internal/errors"
	"codeberg.org/vertexgate/server/internal/llm"
	"codeberg.org/vertexgate/server/internal/logger"
)

const (
	geminiFailureMessage = "Request to Gemini Pro's chat feature failed."
	bisonFailureMessage  = "Request to chat-bison failed."
)

type GeminiChatter interface {
	Chat(ctx context.Context, req llm.ChatRequest) (string, error)
}

type BisonChatter interface {
	ChatBison(ctx context.Context, req llm.BisonRequest) (string, error)
}

// GeminiProHandler godoc
// @Summary Chat with Gemini
// @Description Continues a conversation with the selected Gemini model. The last message is the prompt; earlier messages are history. The role "assistant" is accepted as an alias for "model".
// @Tags chat
// @Accept json
// @Produce json
// @Param request body GeminiRequest true "Conversation and generation parameters"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/gemini-pro [post]
func GeminiProHandler(model GeminiChatter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GeminiRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		modelID, err := llm.ResolveModel(req.ModelName)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		messages, err := llm.NormalizeRoles(req.Messages)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		history, prompt, err := llm.SplitTurns(messages)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		logger.FromContext(c.Request.Context()).Debug("gemini chat request",
			"model", modelID,
			"history_turns", len(history),
		)

		text, err := model.Chat(c.Request.Context(), llm.ChatRequest{
			Model:   modelID,
			History: history,
			Prompt:  prompt,
			Params:  req.Resolve(llm.DefaultGeminiParams),
		})
		if err != nil {
			errors.UpstreamError(c, geminiFailureMessage, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Role:    llm.RoleModel,
			Content: text,
		})
	}
}

// BisonHandler godoc
// @Summary Chat with chat-bison
// @Description Continues a conversation with chat-bison-32k seeded with the configured context and examples. The last message is the prompt; earlier messages are history with authors passed through unchanged.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body BisonRequest true "Conversation and generation parameters"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /chat/bison [post]
func BisonHandler(model BisonChatter, prompts *config.Prompts) gin.HandlerFunc {
	examples := make([]llm.Example, 0, len(prompts.Bison.Examples))
	for _, ex := range prompts.Bison.Examples {
		examples = append(examples, llm.Example{Input: ex.Input, Output: ex.Output})
	}

	return func(c *gin.Context) {
		var req BisonRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		history, prompt, err := llm.SplitTurns(req.Messages)
		if err != nil {
			errors.BadRequest(c, err.Error(), nil)
			return
		}

		logger.FromContext(c.Request.Context()).Debug("chat-bison request",
			"history_turns", len(history),
		)

		text, err := model.ChatBison(c.Request.Context(), llm.BisonRequest{
			Context:  prompts.Bison.Context,
			Examples: examples,
			History:  history,
			Prompt:   prompt,
			Params:   req.Resolve(llm.DefaultBisonParams),
		})
		if err != nil {
			errors.UpstreamError(c, bisonFailureMessage, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Role:    llm.RoleModel,
			Content: text,
		})
	}
}

// GeminiProVisionHandler godoc
// @Summary Chat with Gemini Pro Vision
// @Description Reserved for multimodal chat; not implemented.
// @Tags chat
// @Produce json
// @Failure 501 {object} errors.ErrorResponse
// @Router /chat/gemini-pro-v [post]
func GeminiProVisionHandler(c *gin.Context) {
	errors.NotImplemented(c, "gemini-pro-v chat is not implemented")
}

package chat

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/api/rest/preflight"
	"codeberg.org/vertexgate/server/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, gemini GeminiChatter, bison BisonChatter, prompts *config.Prompts) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("/gemini-pro", GeminiProHandler(gemini))
		chatGroup.POST("/bison", BisonHandler(bison, prompts))
		chatGroup.POST("/gemini-pro-v", GeminiProVisionHandler)

		chatGroup.OPTIONS("/gemini-pro", preflight.Handler)
		chatGroup.OPTIONS("/bison", preflight.Handler)
		chatGroup.OPTIONS("/gemini-pro-v", preflight.Handler)
	}
}

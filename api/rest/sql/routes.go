package sql

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/api/rest/preflight"
	"codeberg.org/vertexgate/server/internal/config"
)

// registers SQL generation routes
func RegisterRoutes(router *gin.RouterGroup, generator TextGenerator, prompts *config.Prompts) {
	router.POST("/sql", Handler(generator, prompts))
	router.OPTIONS("/sql", preflight.Handler)
}

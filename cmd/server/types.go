package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/api/rest/chat"
	"codeberg.org/vertexgate/server/api/rest/search"
	"codeberg.org/vertexgate/server/api/rest/sql"
	"codeberg.org/vertexgate/server/internal/config"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the remote model and search clients plus the prompts that feed them
type Services struct {
	Gemini   chat.GeminiChatter
	Bison    chat.BisonChatter
	SQL      sql.TextGenerator
	Searcher search.Searcher
	Prompts  *config.Prompts
}

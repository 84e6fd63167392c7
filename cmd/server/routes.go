package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"codeberg.org/vertexgate/server/api/rest/chat"
	"codeberg.org/vertexgate/server/api/rest/health"
	"codeberg.org/vertexgate/server/api/rest/index"
	"codeberg.org/vertexgate/server/api/rest/search"
	"codeberg.org/vertexgate/server/api/rest/sql"
	_ "codeberg.org/vertexgate/server/docs"
	"codeberg.org/vertexgate/server/internal/errors"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	index.RegisterRoutes(router)
	router.GET("/health", health.Handler)
	router.GET("/ping", health.PingHandler)
	router.GET("/docs/swagger.json", swaggerHandler)

	root := router.Group("/")

	{
		chat.RegisterRoutes(root, server.services.Gemini, server.services.Bison, server.services.Prompts)
		sql.RegisterRoutes(root, server.services.SQL, server.services.Prompts)
		search.RegisterRoutes(root, server.services.Searcher)
	}
}

func swaggerHandler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		errors.InternalError(c, "failed to render API document", err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

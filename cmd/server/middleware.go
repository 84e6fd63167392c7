package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/vertexgate/server/api/rest/preflight"
	"codeberg.org/vertexgate/server/internal/logger"
)

const requestIDHeader = "X-Request-Id"

// answers browser preflights with the same headers as the static OPTIONS routes;
// requests with a disallowed Origin get 403 here and never reach preflight.Handler.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{preflight.AllowMethods},
		AllowHeaders: []string{preflight.AllowHeaders},
		MaxAge:       preflight.MaxAge,
	}

	if allowsAnyOrigin(allowedOrigins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}

	return cors.New(cfg)
}

func allowsAnyOrigin(origins []string) bool {
	if len(origins) == 0 {
		return true
	}

	for _, o := range origins {
		if o == preflight.AllowOrigin {
			return true
		}
	}

	return false
}

// tags each request with an id and a request-scoped logger
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(requestIDHeader, id)

		reqLogger := logger.With("request_id", id)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))

		start := time.Now()
		c.Next()

		reqLogger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

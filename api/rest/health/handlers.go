package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName = "vertexgate"
	Version     = "1.0.0"
)

// Handler godoc
// @Summary Health check
// @Description Reports that the gateway process is up. Does not contact Vertex AI.
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status:  "healthy",
		Service: ServiceName,
		Version: Version,
	})
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}

package preflight

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// static preflight policy shared by the OPTIONS routes and the CORS middleware
const (
	AllowOrigin  = "*"
	AllowMethods = http.MethodGet
	AllowHeaders = "Content-Type"
	MaxAge       = time.Hour
)

// Handler godoc
// @Summary CORS preflight
// @Description Static preflight response allowing GET with Content-Type from any origin, cached for one hour
// @Tags cors
// @Success 204
// @Router /chat/gemini-pro [options]
// @Router /chat/bison [options]
// @Router /chat/gemini-pro-v [options]
// @Router /sql [options]
//
// Behind the CORS middleware this only answers requests without an Origin header;
// requests carrying one are answered or rejected there using CORS_ALLOWED_ORIGINS.
func Handler(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", AllowOrigin)
	c.Header("Access-Control-Allow-Methods", AllowMethods)
	c.Header("Access-Control-Allow-Headers", AllowHeaders)
	c.Header("Access-Control-Max-Age", strconv.Itoa(int(MaxAge/time.Second)))
	c.Status(http.StatusNoContent)
}

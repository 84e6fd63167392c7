package index

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var page []byte

// Handler godoc
// @Summary Landing page
// @Tags index
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func Handler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

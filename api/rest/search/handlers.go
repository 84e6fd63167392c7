package search

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/internal/errors"
	"codeberg.org/vertexgate/server/internal/logger"
	vsearch "codeberg.org/vertexgate/server/internal/search"
)

type Searcher interface {
	Search(ctx context.Context, query, engineID string) ([]byte, error)
}

// Handler godoc
// @Summary Search an engine
// @Description Runs a query against a Vertex AI Search engine and returns ranked results with a generated summary.
// @Tags search
// @Produce json
// @Param query query string true "Search query"
// @Param engine query string true "Search engine id"
// @Success 200 {object} vsearch.Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /search [get]
func Handler(searcher Searcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q Query
		if err := c.ShouldBindQuery(&q); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if strings.TrimSpace(q.Query) == "" {
			errors.MissingParameter(c, "query")
			return
		}

		if strings.TrimSpace(q.Engine) == "" {
			errors.MissingParameter(c, "engine")
			return
		}

		raw, err := searcher.Search(c.Request.Context(), q.Query, q.Engine)
		if err != nil {
			errors.InternalError(c, "search request failed", err)
			return
		}

		resp, err := vsearch.Flatten(raw)
		if err != nil {
			errors.InternalError(c, "failed to process search response", err)
			return
		}

		logger.FromContext(c.Request.Context()).Debug("search completed",
			"engine", q.Engine,
			"results", len(resp.Results),
		)

		c.JSON(http.StatusOK, resp)
	}
}

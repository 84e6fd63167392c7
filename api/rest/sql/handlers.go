package sql

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"codeberg.org/vertexgate/server/internal/config"
	"codeberg.org/vertexgate/server/internal/errors"
	"codeberg.org/vertexgate/server/internal/llm"
	"codeberg.org/vertexgate/server/internal/logger"
)

type TextGenerator interface {
	GenerateText(ctx context.Context, req llm.TextRequest) (string, error)
}

var codeFence = regexp.MustCompile("(?i)```(?:sql)?")

// Handler godoc
// @Summary Generate BigQuery SQL
// @Description Turns a natural language question into a single-line BigQuery SQL statement for the configured schema.
// @Tags sql
// @Accept json
// @Produce plain
// @Param request body Request true "Natural language question"
// @Success 200 {string} string "SQL statement"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /sql [post]
func Handler(generator TextGenerator, prompts *config.Prompts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Query) == "" {
			errors.MissingParameter(c, "query")
			return
		}

		prompt, err := prompts.RenderSQL(req.Query)
		if err != nil {
			errors.InternalError(c, "failed to build sql prompt", err)
			return
		}

		text, err := generator.GenerateText(c.Request.Context(), llm.TextRequest{
			Model:  llm.SQLModel,
			Prompt: prompt,
			Params: llm.SQLParams,
		})
		if err != nil {
			errors.InternalError(c, "sql generation failed", err)
			return
		}

		statement := cleanStatement(text)
		logger.FromContext(c.Request.Context()).Debug("sql generated", "length", len(statement))

		c.String(http.StatusOK, statement)
	}
}

// strips code fences and collapses real or escaped line breaks into single spaces;
// quoted literals and identifiers are copied unchanged
func cleanStatement(text string) string {
	text = codeFence.ReplaceAllString(text, " ")

	var b strings.Builder
	b.Grow(len(text))

	var quote rune
	pendingSpace := false
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			b.WriteRune(r)
			if r == '\\' && quote != '`' && i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
				continue
			}
			if r == quote {
				quote = 0
			}
			continue
		}

		if unicode.IsSpace(r) || (r == '\\' && i+1 < len(runes) && runes[i+1] == 'n') {
			if r == '\\' {
				i++
			}
			pendingSpace = b.Len() > 0
			continue
		}

		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}

		if r == '\'' || r == '"' || r == '`' {
			quote = r
		}

		b.WriteRune(r)
	}

	return b.String()
}

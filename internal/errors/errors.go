package errors

import (
	"net/http"
	"strings"

	"codeberg.org/vertexgate/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for failed requests
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For remote clients and internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	// add details if error provided
	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 naming the missing request parameter
func MissingParameter(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeBadRequest,
		Message: "missing required parameter: " + name,
	})
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := ""

	if err != nil {
		details = err.Error()
		if strings.Contains(details, "binding") || strings.Contains(details, "validation") {
			message = "request validation failed"
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 500 internal server error carrying sanitized details
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logFailure(c, message, err)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 500 with a fixed message and no details; err is only logged
func UpstreamError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "upstream request failed"
	}

	logFailure(c, message, err)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeUpstreamError,
		Message: message,
	})
}

// returns a 501 not implemented error
func NotImplemented(c *gin.Context, message string) {
	if message == "" {
		message = "not implemented"
	}

	c.JSON(http.StatusNotImplemented, ErrorResponse{
		Error:   CodeNotImplemented,
		Message: message,
	})
}

// log full error server-side with request context
func logFailure(c *gin.Context, message string, err error) {
	logger.ErrorCtx(c.Request.Context(), err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
}

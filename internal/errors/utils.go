package errors

import (
	"os"
	"strings"
)

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "credentials") || strings.Contains(lower, "oauth2") || strings.Contains(lower, "token") {
		return "upstream authentication failed"
	}

	if strings.Contains(lower, "permission") || strings.Contains(lower, "unauthorized") || strings.Contains(lower, "status 403") {
		return "permission denied"
	}

	if strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout") {
		return "request timed out"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") || strings.Contains(lower, "no such host") {
		return "connection error occurred"
	}

	if strings.Contains(lower, "not found") || strings.Contains(lower, "status 404") {
		return "resource not found"
	}

	return "an error occurred"
}

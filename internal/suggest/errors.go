package suggest

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// IsQuotaError reports whether err means the request quota is exhausted.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "quota")
}

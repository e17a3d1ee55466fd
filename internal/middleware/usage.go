package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/mero_khata/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are never reported.
var untrackedPrefixes = []string{"/health", "/swagger"}

// UsageTracking reports every successful API call as a usage event named after its route,
// e.g. "/api/v1/customers/:customerID" becomes "api_v1_customers_:customerID".
func UsageTracking(tracker *utils.UsageTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tracker.IsEnabled() || isUntracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Unmatched routes have no full path
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		tracker.Track(eventName, map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
			"request_id":  c.Writer.Header().Get("X-Request-ID"),
		})
	}
}

func isUntracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

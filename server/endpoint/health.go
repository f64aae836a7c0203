// Package endpoint provides the operational HTTP endpoints: health and
// runtime metrics.
package endpoint

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes a single dependency. Ping returns nil when the dependency is
// reachable.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Health returns a handler that reports service health including dependency
// statuses. Any failing check makes the overall status unhealthy and the
// response a 503.
func Health(serviceName string, checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		components := make([]gin.H, 0, len(checks))

		for _, check := range checks {
			componentStatus := "healthy"
			entry := gin.H{"name": check.Name}
			if err := check.Ping(c.Request.Context()); err != nil {
				componentStatus = "unhealthy"
				status = "unhealthy"
				entry["error"] = err.Error()
			}
			entry["status"] = componentStatus
			components = append(components, entry)
		}

		httpStatus := http.StatusOK
		if status == "unhealthy" {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     status,
			"service":    serviceName,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": components,
		})
	}
}

package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics returns a handler reporting process runtime statistics: goroutine
// count and memory usage. There is no external metrics system; this endpoint
// is the operational view.
func Metrics() gin.HandlerFunc {
	mb := func(b uint64) uint64 { return b / 1024 / 1024 }

	return func(c *gin.Context) {
		var stats runtime.MemStats
		runtime.ReadMemStats(&stats)

		c.JSON(http.StatusOK, gin.H{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"goroutines": runtime.NumGoroutine(),
			"memory": gin.H{
				"alloc_mb":       mb(stats.Alloc),
				"total_alloc_mb": mb(stats.TotalAlloc),
				"sys_mb":         mb(stats.Sys),
				"gc_runs":        stats.NumGC,
			},
		})
	}
}

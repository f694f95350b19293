package httpserver

import (
	"orderdesk/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "orderdesk fake ERP"
	HealthVersion = "1.0.0"
	ServiceName   = "orderdesk-mockerp"
)

func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, "", gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the store is seeded, which New guarantees.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, "", gin.H{
		"status":      "ready",
		"service":     ServiceName,
		"environment": srv.environment,
		"reports":     len(srv.store.ErrorReports()),
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, "", gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}

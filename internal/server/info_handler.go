package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfoResponse represents the health check response
type HealthInfoResponse struct {
	Health  bool   `json:"health"`
	Status  string `json:"status"`
	Service string `json:"service"`
}

// GetHealthInfo handles health check requests. It pings the database so a
// wedged store shows up as unhealthy.
func (s *Server) GetHealthInfo(c *gin.Context) {
	if err := s.store.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthInfoResponse{
			Health:  false,
			Status:  "degraded",
			Service: "botwatch",
		})
		return
	}
	c.JSON(http.StatusOK, HealthInfoResponse{
		Health:  true,
		Status:  "healthy",
		Service: "botwatch",
	})
}

// VersionInfo holds build version information
type VersionInfo struct {
	Version string `json:"version"`
}

// GetVersionInfo returns the server version.
func (s *Server) GetVersionInfo(c *gin.Context) {
	c.JSON(http.StatusOK, VersionInfo{Version: s.version})
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botwatch-dev/botwatch/internal/constant"
)

// GetDashboardStats returns the aggregates the dashboard page renders:
// bot counts, test success rate and the most recent tests.
func (s *Server) GetDashboardStats(c *gin.Context) {
	stats, err := s.storage.DashboardStats(constant.DefaultRecentTests)
	if err != nil {
		respondError(c, err, "Invalid request", "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

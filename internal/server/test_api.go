package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// GetTests returns all recorded test runs.
func (s *Server) GetTests(c *gin.Context) {
	tests, err := s.storage.GetAllTests()
	if err != nil {
		respondError(c, err, "Invalid request", "Failed to fetch tests")
		return
	}
	c.JSON(http.StatusOK, tests)
}

// CreateTest records a new test run for a bot.
func (s *Server) CreateTest(c *gin.Context) {
	var input typ.InsertTest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, "Invalid test data")
		return
	}

	test, err := s.storage.CreateTest(input)
	if err != nil {
		respondError(c, err, "Invalid test data", "Failed to create test")
		return
	}
	c.JSON(http.StatusCreated, test)
}

// GetTestsByBot returns all tests for one bot; an unknown bot yields an
// empty list, not a 404.
func (s *Server) GetTestsByBot(c *gin.Context) {
	tests, err := s.storage.GetTestsByBotID(c.Param("botId"))
	if err != nil {
		respondError(c, err, "Invalid request", "Failed to fetch tests for bot")
		return
	}
	c.JSON(http.StatusOK, tests)
}

package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/botwatch-dev/botwatch/internal/typ"
)

// GetBots returns all bots.
func (s *Server) GetBots(c *gin.Context) {
	bots, err := s.storage.GetAllBots()
	if err != nil {
		respondError(c, err, "Invalid request", "Failed to fetch bots")
		return
	}
	c.JSON(http.StatusOK, bots)
}

// CreateBot creates a new bot.
func (s *Server) CreateBot(c *gin.Context) {
	var input typ.InsertBot
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, "Invalid bot data")
		return
	}

	bot, err := s.storage.CreateBot(input)
	if err != nil {
		respondError(c, err, "Invalid bot data", "Failed to create bot")
		return
	}
	c.JSON(http.StatusCreated, bot)
}

// GetBot returns a single bot by id.
func (s *Server) GetBot(c *gin.Context) {
	bot, err := s.storage.GetBot(c.Param("id"))
	if err != nil {
		respondError(c, err, "Invalid request", "Failed to fetch bot")
		return
	}
	if bot == nil {
		respondNotFound(c, "Bot not found")
		return
	}
	c.JSON(http.StatusOK, bot)
}

// UpdateBot applies a partial update to a bot.
func (s *Server) UpdateBot(c *gin.Context) {
	var input typ.UpdateBot
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, "Invalid bot data")
		return
	}

	bot, err := s.storage.UpdateBot(c.Param("id"), input)
	if err != nil {
		respondError(c, err, "Invalid bot data", "Failed to update bot")
		return
	}
	if bot == nil {
		respondNotFound(c, "Bot not found")
		return
	}
	c.JSON(http.StatusOK, bot)
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/botwatch-dev/botwatch/internal/monitor"
)

// ErrorResponse is the error body for all non-2xx responses. Field-level
// issues are present only for validation failures; everything else gets a
// generic message so internal detail never leaks to clients.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []monitor.FieldIssue `json:"errors,omitempty"`
}

// respondError maps a domain error to a response: validation errors become
// 400 with field detail, anything else is a 500 with genericMsg.
func respondError(c *gin.Context, err error, invalidMsg, genericMsg string) {
	var verr *monitor.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: invalidMsg,
			Errors:  verr.Issues,
		})
		return
	}

	logrus.WithError(err).Error(genericMsg)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: genericMsg})
}

func respondNotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: msg})
}

func respondBadBody(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}

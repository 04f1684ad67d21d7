package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/botwatch-dev/botwatch/internal/monitor"
	"github.com/botwatch-dev/botwatch/internal/typ"
)

// UserResponse is the public view of a user. The password hash never
// leaves the process.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Signup creates a new user account.
func (s *Server) Signup(c *gin.Context) {
	var input typ.InsertUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, "Invalid signup data")
		return
	}

	if input.Password != "" {
		if err := s.passwordSvc.ValidatePassword(input.Password); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: "Invalid signup data",
				Errors:  []monitor.FieldIssue{{Field: "password", Message: err.Error()}},
			})
			return
		}
		hash, err := s.passwordSvc.HashPassword(input.Password)
		if err != nil {
			logrus.WithError(err).Error("Failed to hash password")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create user"})
			return
		}
		input.Password = hash
	}

	user, err := s.storage.CreateUser(input)
	if err != nil {
		respondError(c, err, "Invalid signup data", "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username})
}

// Login verifies credentials and issues a JWT.
func (s *Server) Login(c *gin.Context) {
	var input typ.InsertUser
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c, "Invalid login data")
		return
	}

	user, err := s.storage.GetUserByUsername(input.Username)
	if err != nil {
		respondError(c, err, "Invalid login data", "Failed to log in")
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid username or password"})
		return
	}

	ok, err := s.passwordSvc.VerifyPassword(input.Password, user.Password)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid username or password"})
		return
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  UserResponse{ID: user.ID, Username: user.Username},
	})
}

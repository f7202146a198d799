package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ins-V/simple-todo-list/internal/auth"
	"github.com/Ins-V/simple-todo-list/models"
)

// Login exchanges form-encoded credentials for a bearer token.
// The failure response does not distinguish an unknown username from a wrong
// password.
func (s *Server) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := s.Auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "incorrect username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Registration creates a new user and immediately logs it in.
func (s *Server) Registration(c *gin.Context) {
	var in RegistrationInput
	if err := c.ShouldBindBodyWithJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	token, err := s.Auth.Register(c.Request.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, auth.ErrConflict) {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "this user is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

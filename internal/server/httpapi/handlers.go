package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akosarev/jokesapi/internal/server/jokes"
	"github.com/akosarev/jokesapi/internal/server/users"
	"github.com/akosarev/jokesapi/internal/shared"
)

func (s *Server) registerUser(c *gin.Context) {
	ctx := c.Request.Context()

	var creds users.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		// an unreadable body counts as missing credentials
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	user, err := s.users.Register(ctx, creds)
	if err != nil {
		if errors.Is(err, shared.ErrMissingCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
			return
		}
		s.logger.Error(ctx, "registration failed", "username", creds.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info(ctx, "registered", "username", user.Username)
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

func (s *Server) loginUser(c *gin.Context) {
	ctx := c.Request.Context()

	var creds users.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Username and password are required"})
		return
	}

	user, token, err := s.users.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrMissingCredentials):
			// historical quirk of this API: missing login credentials are a 500
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Username and password are required"})
		case errors.Is(err, shared.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		default:
			s.logger.Error(ctx, "login lookup failed", "username", creds.Username, "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the API, " + user.Username,
		"token":   token,
	})
}

func (s *Server) listJokes(c *gin.Context) {
	c.JSON(http.StatusOK, jokes.All)
}

func (s *Server) listUsers(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := s.users.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

package httpapi

import (
	"errors"
	"net/http"

	"calendard/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := c.Request.Context()

	user, err := s.users.Signup(ctx, req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(ctx, "user signed up", "username", user.Username)

	s.setTokenCookie(c, user.Token)
	c.JSON(http.StatusCreated, gin.H{"type": "success", "token": user.Token})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// same answer for a bad username and a bad password
		if errors.Is(err, common.ErrUnauthorized) {
			fail(c, http.StatusUnauthorized, "Username or password is incorrect")
			return
		}
		s.writeError(c, err)
		return
	}

	s.setTokenCookie(c, user.Token)
	c.JSON(http.StatusCreated, gin.H{"type": "success", "user": toUserDTO(user)})
}

func (s *Server) handleSelf(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"type": "success", "user": toUserDTO(currentUser(c))})
}

package httpapi

import (
	"errors"
	"net/http"

	"calendard/internal/common"
	"github.com/gin-gonic/gin"
)

type failureResponse struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func fail(c *gin.Context, status int, reason string) {
	c.JSON(status, failureResponse{Type: "failure", Reason: reason})
}

// writeError maps service errors to HTTP statuses and the failure envelope.
// ErrInvalidToken additionally expires the client's token cookie so a stale
// credential is not re-sent forever.
func (s *Server) writeError(c *gin.Context, err error) {

	var ve *common.ValidationError
	if errors.As(err, &ve) {
		fail(c, http.StatusBadRequest, ve.Reason)
		return
	}

	switch {
	case errors.Is(err, common.ErrUnauthorized):
		fail(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrInvalidToken):
		s.clearTokenCookie(c)
		fail(c, http.StatusUnauthorized, "No user with that token exists")
	case errors.Is(err, common.ErrForbidden):
		fail(c, http.StatusForbidden, "You are not the owner of this event")
	case errors.Is(err, common.ErrNotFound):
		fail(c, http.StatusNotFound, "Event not found")
	case errors.Is(err, common.ErrConflict):
		fail(c, http.StatusConflict, "A user with that username already exists")
	case errors.Is(err, common.ErrFriendResolution):
		fail(c, http.StatusInternalServerError, "Failed to resolve one or more friends")
	default:
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *Server) setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.TokenCookieName, token, 0, "/", "", s.cookieSecure, true)
}

func (s *Server) clearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.TokenCookieName, "", -1, "/", "", s.cookieSecure, true)
}

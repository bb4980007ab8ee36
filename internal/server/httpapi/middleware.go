package httpapi

import (
	"calendard/internal/common"
	"calendard/internal/server/users"
	"github.com/gin-gonic/gin"
)

const userContextKey = "httpapi.user"

// authRequired resolves the token cookie to a user and aborts the request
// with the mapped error when it cannot. The resolved user (friends included)
// is stored in the gin context for handlers.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(common.TokenCookieName)
		if err != nil || token == "" {
			s.writeError(c, common.ErrUnauthorized)
			c.Abort()
			return
		}

		user, err := s.users.ResolveToken(c.Request.Context(), token)
		if err != nil {
			s.writeError(c, err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the user placed in the context by authRequired.
func currentUser(c *gin.Context) *users.ResolvedUser {
	return c.MustGet(userContextKey).(*users.ResolvedUser)
}

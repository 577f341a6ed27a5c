package server

import (
	"github.com/gin-gonic/gin"
	authdomain "github.com/rpsgarage/servicecenter/internal/auth/domain"
	"github.com/rpsgarage/servicecenter/internal/obscontext"
)

const contextPrincipalKey = "principal"

// AuthRequired resolves the session cookie to a principal and stores it
// in the request context. Every downstream read of "current user" goes
// through the principal; nothing is held in package state.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		principal, err := s.authsvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextPrincipalKey, principal)
		ctx := obscontext.WithPrincipal(c.Request.Context(), principal.User.Username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin gates a route group to ADMIN principals.
func (s *Server) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := currentPrincipal(c)
		if principal == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if principal.User.Role != authdomain.RoleAdmin {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func currentPrincipal(c *gin.Context) *authdomain.Principal {
	value, ok := c.Get(contextPrincipalKey)
	if !ok {
		return nil
	}
	principal, ok := value.(*authdomain.Principal)
	if !ok {
		return nil
	}
	return principal
}

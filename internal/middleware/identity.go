package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shortlyhq/shortly-backend/internal/auth"
	"github.com/shortlyhq/shortly-backend/internal/services"
)

// ResolveIdentity is the single authentication-resolution step. It runs on
// every request, parses an optional bearer token, and attaches either an
// authenticated identity or the anonymous zero value. It never rejects:
// endpoints that demand authentication layer RequireAuth on top.
func ResolveIdentity(tokens *auth.TokenManager, authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			auth.SetIdentity(c, auth.Identity{})
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			auth.SetIdentity(c, auth.Identity{})
			c.Next()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			auth.SetIdentity(c, auth.Identity{})
			c.Next()
			return
		}

		identity, err := authSvc.Resolve(c.Request.Context(), claims)
		if err != nil {
			auth.SetIdentity(c, auth.Identity{})
			c.Next()
			return
		}

		auth.SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers with 401. It assumes ResolveIdentity
// already ran.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.IdentityFrom(c).Anonymous() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"statusCode": http.StatusUnauthorized,
				"message":    "Authentication required",
			})
			return
		}
		c.Next()
	}
}

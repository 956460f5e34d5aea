package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

// RoleLookup is a local interface; any service that can answer "is this
// email an HR account" fits.
type RoleLookup interface {
	IsHR(ctx context.Context, email string) (bool, error)
}

// RequireHR gates HR-only routes. It runs after RequireAuth and checks
// the stored role of the authenticated email. A missing user document
// is treated the same as a non-HR role.
func RequireHR(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		isHR, err := roles.IsHR(c.Request.Context(), email)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !isHR {
			response.FromError(c, apperror.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/udoykumar/assets-verse-server/internal/identity"
	"github.com/udoykumar/assets-verse-server/internal/shared/apperror"
	"github.com/udoykumar/assets-verse-server/internal/shared/contextutil"
	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

// EmailKey is the gin context key holding the authenticated email.
const EmailKey = "email"

// RequireAuth verifies the Authorization bearer token against the
// identity provider and stores the resolved email in the context.
// Missing, malformed, and rejected tokens all surface as the same
// generic 401 so provider internals never leak.
func RequireAuth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		email, err := verifier.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			response.FromError(c, apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		ctx := contextutil.WithEmail(c.Request.Context(), email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

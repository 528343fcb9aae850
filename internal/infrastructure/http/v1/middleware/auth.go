package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shopledger/internal/core/apperror"
	appctx "shopledger/internal/core/context"
)

// KeyOperator is the gin context key holding the operator username.
const KeyOperator = "operator"

// Authenticator validates bearer tokens.
type Authenticator interface {
	Authenticate(token string) (*appctx.OperatorContext, error)
}

// Auth requires a valid bearer token and puts the operator in the context.
func Auth(authenticator Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		op, err := authenticator.Authenticate(parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(appctx.WithOperator(c.Request.Context(), op))
		c.Set(KeyOperator, op.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}

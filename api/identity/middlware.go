// Package identity guards the mutating maze routes with bearer
// tokens. Tokens are issued out of band; there are no user accounts.
package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/ascii-maze-api/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextServiceClaims is the key used to store token claims in the Gin context.
	ContextServiceClaims = "serviceClaims"
)

// Authoriz validates the bearer token on protected routes and attaches
// its claims to the request context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the access token from the Authorization header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Status(http.StatusUnauthorized) // No token found in the header.
			c.Abort()
			return
		}

		// Split the "Bearer" prefix from the token.
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.Status(http.StatusUnauthorized) // Malformed Authorization header.
			c.Abort()
			return
		}

		// Validate the token part.
		claims, err := ts.Decode(parts[1])
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		c.Set(ContextServiceClaims, claims)
		c.Next()
	}
}

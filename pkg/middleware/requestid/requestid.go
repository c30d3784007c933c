package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is the canonical request ID header.
const Header = "X-Request-ID"

// ContextKey is the gin context key the request ID is stored under.
const ContextKey = "requestId"

// New returns a middleware that ensures each request carries an ID.
// An incoming X-Request-ID is trusted, otherwise one is generated.
func New() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKey, id)
		c.Header(Header, id)
		c.Next()
	}
}

// FromContext extracts the request ID, empty when absent.
func FromContext(c *gin.Context) string {
	if id, ok := c.Get(ContextKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

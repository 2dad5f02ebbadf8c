package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/design-review/pkg/identity"
	"github.com/linskybing/design-review/pkg/response"
)

const (
	HeaderUserID = "X-User-ID"
	ctxUserID    = "user_id"
)

// Identity injects the acting user into the request context. The caller
// is taken from a bearer token, then the X-User-ID header, then
// defaultUserID. Nothing is authorized here; unknown ids fail later when
// an operation resolves them.
func Identity(defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := defaultUserID

		if header := c.GetHeader(HeaderUserID); header != "" {
			userID = header
		}
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
				return
			}
			claims, err := ParseToken(parts[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid token"})
				return
			}
			userID = claims.UserID
		}

		if userID != "" {
			c.Set(ctxUserID, userID)
			c.Request = c.Request.WithContext(identity.WithUser(c.Request.Context(), userID))
		}
		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdesk/constants"
	"taskdesk/session"
	"taskdesk/utils"
)

const identityKey = "identity"

// SessionMiddleware resolves the session cookie to an Identity and
// stores it in the request context. Requests without a valid, live
// binding are rejected with 401.
func SessionMiddleware(store session.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		sid, err := utils.ParseSessionToken(secret, cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		identity, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Session lookup failed"})
			}
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RoleMiddleware gates a route to the given roles. Must run after
// SessionMiddleware.
func RoleMiddleware(allowedRoles ...constants.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		for _, role := range allowedRoles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		c.Abort()
	}
}

// CurrentIdentity returns the identity SessionMiddleware resolved for
// this request.
func CurrentIdentity(c *gin.Context) (session.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return session.Identity{}, false
	}
	identity, ok := v.(session.Identity)
	return identity, ok
}

// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sneakhaus/storefront/internal/config"
)

const sessionCookie = "storefront_session"

// Session assigns every client an anonymous session id via cookie. The
// id scopes cart, wishlist, compare and checkout state in the mirror.
func Session(cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Store.SessionTTL.Seconds())

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, maxAge, "/", "", cfg.IsProduction(), true)
		}
		c.Set("session_id", sessionID)
		c.Next()
	}
}

// GetSessionID returns the request's session id.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get("session_id"); exists {
		return sessionID.(string)
	}
	return ""
}

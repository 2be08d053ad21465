package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the anonymous session id. The session
// scopes the cart, checkout state and order snapshots; there is no account
// or cross-device identity behind it.
const SessionCookie = "audiophile_session"

// sessionIDKey is the gin context key the session id is stored under.
const sessionIDKey = "session_id"

// Session issues a session cookie when the request carries none and exposes
// the session id on the gin context.
func Session(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(SessionCookie, sid, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// SessionID returns the session id attached by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

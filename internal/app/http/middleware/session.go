package middleware

import (
	"net/http"

	"lawfirm-backend/internal/api/respond"
	"lawfirm-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "admin_session"

// Context keys set for handlers running behind RequireAuth.
const (
	CtxAdminID  = "admin_id"
	CtxUsername = "admin_username"
)

// CurrentSession resolves the request's session cookie, if any.
func CurrentSession(c *gin.Context, sessions *session.Store) (session.Session, bool) {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return session.Session{}, false
	}
	return sessions.Get(token)
}

// RequireAuth gates mutating and private-read endpoints. Anonymous
// requests are answered 401 and never reach the handler.
func RequireAuth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c, sessions)
		if !ok {
			respond.Error(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Set(CtxAdminID, sess.AdminID)
		c.Set(CtxUsername, sess.Username)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"courier/internal/session"
)

// CookieName is the name of the session cookie. The value is an opaque
// key into the session store.
const CookieName = "courier_session"

const sessionContextKey = "session"

// SessionMiddleware resolves the session cookie against the store and
// attaches the session payload to the request context. Requests without a
// valid session proceed as anonymous; store errors on the read path fail
// open for the same reason.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(CookieName)
		if err != nil || key == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), key)
		if err != nil || sess == nil {
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session attached to the request, or nil
// for an anonymous request.
func SessionFromContext(c *gin.Context) *session.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}

	sess, ok := value.(*session.Session)
	if !ok {
		return nil
	}

	return sess
}

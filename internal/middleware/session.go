package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kugicode/catalog-service/internal/session"
)

const sessionContextKey = "currentSession"

// ResolveSession reads the session cookie, resolves it against the store and,
// when it maps to a live session, exposes the session to handlers via the
// request context. Requests without a valid session proceed unauthenticated;
// each operation decides whether identity is required.
func ResolveSession(store session.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				logger.Warn("session resolution failed", zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the resolved session for this request, or nil when
// the caller is unauthenticated.
func CurrentSession(c *gin.Context) *session.Session {
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

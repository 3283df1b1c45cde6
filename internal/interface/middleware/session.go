package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightroof/solar-leads/internal/session"
	"github.com/brightroof/solar-leads/pkg/helpers"
	"github.com/brightroof/solar-leads/pkg/response"
)

// Context keys set on a resolved session.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// RequireSession is the session gate: it resolves the session cookie against
// the store and rejects with 401 Unauthorized when no live session exists.
// On success the identity is placed in the Gin context for handlers.
func RequireSession(store session.Store, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := resolve(c, store, cookies)
		if ident == nil {
			response.AbortFail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(CtxUserIDKey, ident.UserID)
		c.Set(CtxUserEmailKey, ident.Email)
		c.Next()
	}
}

// OptionalSession resolves the session if one is attached but never rejects.
// Used by routes that adapt to the caller's auth state, like /account.
func OptionalSession(store session.Store, cookies *helpers.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident := resolve(c, store, cookies); ident != nil {
			c.Set(CtxUserIDKey, ident.UserID)
			c.Set(CtxUserEmailKey, ident.Email)
		}
		c.Next()
	}
}

func resolve(c *gin.Context, store session.Store, cookies *helpers.Manager) *session.Identity {
	token := cookies.Token(c)
	if token == "" {
		return nil
	}
	ident, err := store.Get(c.Request.Context(), token)
	if err != nil {
		// Expired and unknown tokens look the same; other store errors
		// also read as unauthenticated rather than failing the request.
		return nil
	}
	return ident
}

// IdentityFromContext rebuilds the session identity set by the gate,
// or nil when the request is anonymous.
func IdentityFromContext(c *gin.Context) *session.Identity {
	uid := c.GetString(CtxUserIDKey)
	if uid == "" {
		return nil
	}
	return &session.Identity{UserID: uid, Email: c.GetString(CtxUserEmailKey)}
}

package session

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"classifieds_backend/internal/feature/auth/domain/entity"
)

// CookieName is the name of the session cookie. Its value is the opaque
// session ID; all session state lives server-side.
const CookieName = "sid"

// contextPrincipal is the gin context key holding the restored principal.
const contextPrincipal = "principal"

// Resolver turns a session cookie value into a live session.
// Following Go convention: the interface is defined by the consumer (middleware), not the provider (auth usecase).
type Resolver interface {
	CurrentSession(ctx context.Context, id string) (*entity.Session, error)
}

// Restore reads the session cookie and, when it resolves to a live session,
// stores the principal snapshot in the request context. It never rejects a
// request; route guards decide what an anonymous request may do.
func Restore(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}
		session, err := resolver.CurrentSession(c.Request.Context(), id)
		if err != nil {
			// Stale or unknown cookie, proceed as anonymous.
			c.Next()
			return
		}
		c.Set(contextPrincipal, &session.Principal)
		c.Next()
	}
}

// AuthRequired redirects anonymous requests to the login page.
// Protected pages never answer anonymous requests with an error status.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Principal(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated sends logged-in users visiting a public page to their
// profile instead.
func RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Principal(c); ok {
			c.Redirect(http.StatusFound, "/profile")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Principal returns the user snapshot restored by Restore, if any.
func Principal(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextPrincipal)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

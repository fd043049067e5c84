// Package middleware holds gin middleware shared by the booking routes.
package middleware

import (
	"log"
	"net/http"
	"strings"

	"easydrive_booking/internal/usecase/interfaces"
	"easydrive_booking/pkg"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Staff access required", http.StatusForbidden)
)

// RequireAuth resolves the bearer token through the identity provider and
// stores the resulting identity on the request context.
func RequireAuth(provider interfaces.IIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		id, err := provider.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Printf("[booking][auth] token resolution failed: %v", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireStaff rejects non-staff callers. It must run after RequireAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok || !id.Staff {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity stored by RequireAuth.
func CurrentIdentity(c *gin.Context) (interfaces.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return interfaces.Identity{}, false
	}
	id, ok := v.(interfaces.Identity)
	return id, ok
}

// SetIdentity exists for handler tests that bypass RequireAuth.
func SetIdentity(c *gin.Context, id interfaces.Identity) {
	c.Set(identityKey, id)
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

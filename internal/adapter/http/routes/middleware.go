package routes

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/web-source-dev/Vos-backend-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session credential", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin session required", http.StatusForbidden)
)

// StaffSession guards the case-addressed routes: a bearer credential matching
// STAFF_API_KEY or ADMIN_API_KEY. Token-addressed routes never pass through
// here; their URL token is the credential.
func StaffSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c)
		if key == "" || (!matchesEnv(key, "STAFF_API_KEY") && !matchesEnv(key, "ADMIN_API_KEY")) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

// AdminSession further restricts the maintenance surface (stage override,
// case deletion) to the admin credential.
func AdminSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := bearerToken(c)
		if key == "" || !matchesEnv(key, "ADMIN_API_KEY") {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func matchesEnv(key, envName string) bool {
	want := os.Getenv(envName)
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(want)) == 1
}

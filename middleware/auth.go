package middleware

import (
	"strings"

	"tastings-with-tay/helper"
	"tastings-with-tay/policy"
	"tastings-with-tay/services"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

var HTTPHelper = helper.NewHTTPHelper()

// AuthMiddleware resolves the bearer token, when present, into the request
// principal. Anonymous requests pass through; the gate decides what they
// may reach.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		principal, err := authService.Authenticate(tokenString)
		if err != nil {
			HTTPHelper.SendServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Set("user_id", principal.UserID)
		c.Set("role", string(principal.Role))

		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller, or nil for anonymous
// requests.
func CurrentPrincipal(c *gin.Context) *policy.Principal {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, _ := value.(*policy.Principal)
	return principal
}

// Gate admits the request only when the caller satisfies the tier the
// policy table requires for entity and op.
func Gate(entity policy.Entity, op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := policy.Check(CurrentPrincipal(c), entity, op); err != nil {
			HTTPHelper.SendServiceError(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

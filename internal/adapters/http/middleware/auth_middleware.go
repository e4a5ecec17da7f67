package middleware

import (
	"strings"

	"nexum-supply/internal/core/domain"
	"nexum-supply/internal/pkg/jwt"
	"nexum-supply/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthRequired.
const (
	LocalUserID = "userID"
	LocalEmail  = "email"
	LocalRole   = "role"
)

// AuthRequired validates the bearer token and stores the caller's
// identity in the request context. Missing and invalid tokens are both
// 401; role checks come later and answer 403.
func AuthRequired(tokens *jwt.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Access token required")
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return response.Unauthorized(c, "Malformed authorization header")
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

// RequireTier gates a route on the caller's role. Never reveals which
// role would have been enough.
func RequireTier(tier domain.Tier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return response.Unauthorized(c, "Authentication required")
		}

		if !tier.Allows(role) {
			return response.Forbidden(c, "Forbidden")
		}

		return c.Next()
	}
}

// ElevatedOnly allows managers and admins.
func ElevatedOnly() fiber.Handler {
	return RequireTier(domain.TierElevated)
}

// AdminOnly allows admins only.
func AdminOnly() fiber.Handler {
	return RequireTier(domain.TierSuperAdmin)
}

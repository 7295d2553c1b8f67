package middleware

import (
	"strings"

	"quizhub/internal/domain"
	"quizhub/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID"   // Key for storing the user id in fiber.Ctx locals
	UserRoleKey         = "userRole" // Key for storing the role in fiber.Ctx locals
)

// Protected authenticates the caller: it requires a valid bearer token and
// stores the resulting identity in the request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthenticatedError("Authorization header is missing")
		}

		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthenticatedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimPrefix(authHeader, BearerSchema)
		if tokenString == "" {
			return domain.NewUnauthenticatedError("Token is empty")
		}

		claims, err := authService.ValidateToken(c.Context(), tokenString)
		if err != nil {
			return domain.NewUnauthenticatedError("Token is invalid or expired")
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UserRoleKey, claims.Role)

		return c.Next()
	}
}

// RequireRole authorizes an already-authenticated caller against a required
// role. It must run after Protected.
func RequireRole(required domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		if !ok {
			return domain.NewUnauthenticatedError("Not authenticated")
		}
		if !identity.Authorize(required) {
			return domain.NewForbiddenError("Requires " + string(required) + " role")
		}
		return c.Next()
	}
}

// IdentityFromCtx reads the authenticated identity stored by Protected.
func IdentityFromCtx(c *fiber.Ctx) (domain.Identity, bool) {
	userID, ok := c.Locals(UserIDKey).(string)
	if !ok || userID == "" {
		return domain.Identity{}, false
	}
	role, ok := c.Locals(UserRoleKey).(domain.Role)
	if !ok {
		return domain.Identity{}, false
	}
	return domain.Identity{UserID: userID, Role: role}, true
}

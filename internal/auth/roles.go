package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// RequireStaff ensures the caller is an authenticated staff member.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Staff == nil {
			return apperrors.NewUnauthenticated("sign in required")
		}
		return c.Next()
	}
}

// RequireManager restricts a route to managers.
func RequireManager() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Staff == nil {
			return apperrors.NewUnauthenticated("sign in required")
		}
		if !principal.IsManager() {
			return apperrors.NewForbidden("manager role required")
		}
		return c.Next()
	}
}

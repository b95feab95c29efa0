package middleware

import (
	"errors"
	"log/slog"

	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/identity"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RoleRequired authorizes the caller against the stored role, re-resolved on
// every request so revocations apply immediately. An X-Admin-Token header
// matching the configured bcrypt hash bypasses the lookup.
func RoleRequired(guard *services.RoleGuard, cfg *config.Config, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminTokenHash != "" {
			if token := c.Get("X-Admin-Token"); token != "" {
				if bcrypt.CompareHashAndPassword([]byte(cfg.AdminTokenHash), []byte(token)) == nil {
					return c.Next()
				}
			}
		}

		email, err := identity.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if _, err := guard.Authorize(email, roles...); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Message: "User not found",
				})
			case errors.Is(err, services.ErrForbidden):
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Forbidden: insufficient role",
				})
			default:
				slog.Error("role authorization failed", "user_email", email, "error", err)
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
					Error: true, Message: "Internal server error",
				})
			}
		}
		return c.Next()
	}
}

// ClaimRoleRequired trusts the role claim on the already-verified token and
// never hits the store. Weaker than RoleRequired: a revoked role stays valid
// until the token expires. Only used on read routes where that is acceptable.
func ClaimRoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimed := identity.Role(c)
		for _, role := range roles {
			if claimed == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Forbidden: insufficient role",
		})
	}
}

package middleware

import (
	"errors"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/identity"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// TokenProtected verifies the bearer token against the Firebase signing
// keys. A missing or malformed header is 401; a token that fails
// verification (signature, expiry, issuer, audience) is 403, matching the
// split between "no credential" and "bad credential".
func TokenProtected(keys *services.FirebaseKeyClient) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc: keys.Keyfunc,
		SuccessHandler: func(c *fiber.Ctx) error {
			claims, ok := identity.Claims(c)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized: no token provided",
				})
			}
			if err := keys.ValidateClaims(claims); err != nil {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized: invalid token",
				})
			}
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error: true, Message: "Unauthorized: no token provided",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

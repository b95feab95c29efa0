package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoIdentity = errors.New("no verified identity in context")

// Claims returns the verified token claims stored by the auth middleware.
func Claims(c *fiber.Ctx) (jwt.MapClaims, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}

// Email returns the caller's email claim.
func Email(c *fiber.Ctx) (string, error) {
	claims, ok := Claims(c)
	if !ok {
		return "", ErrNoIdentity
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrNoIdentity
	}
	return email, nil
}

// Role returns the role claim if the token carries one. Callers that need
// the current role must resolve it from the store instead; this claim is
// only as fresh as the token.
func Role(c *fiber.Ctx) string {
	claims, ok := Claims(c)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

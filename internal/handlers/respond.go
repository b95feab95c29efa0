package handlers

import (
	"errors"
	"log/slog"

	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// fail maps service errors onto HTTP statuses. Unrecognized errors become a
// generic 500 with the cause logged, never echoed to the caller.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrUserNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrMissingDonorInfo),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrMissingFields):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrForbidden):
		status, message = fiber.StatusForbidden, err.Error()
	case errors.Is(err, services.ErrStatusConflict):
		status, message = fiber.StatusConflict, err.Error()
	default:
		slog.Error("request failed", "route", c.Path(), "error", err)
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: true, Message: message})
}

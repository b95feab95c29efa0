package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/identity"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FundingHandler struct {
	fundings *services.FundingService
	payments *services.PaymentService
}

func NewFundingHandler(fundings *services.FundingService, payments *services.PaymentService) *FundingHandler {
	return &FundingHandler{fundings: fundings, payments: payments}
}

// CreatePaymentIntent delegates to the payment gateway and returns the
// client secret the frontend needs to confirm the payment.
func (h *FundingHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req dto.CreatePaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	secret, err := h.payments.CreateIntent(float64(req.Amount))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.PaymentIntentResponse{ClientSecret: secret})
}

// Record stores a funding row after a successful payment.
func (h *FundingHandler) Record(c *fiber.Ctx) error {
	var req dto.CreateFundingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	funding, err := h.fundings.Record(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{InsertedID: funding.ID.String()})
}

func (h *FundingHandler) List(c *fiber.Ctx) error {
	fundings, err := h.fundings.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fundings)
}

// ListByEmail returns the caller's own funding history.
func (h *FundingHandler) ListByEmail(c *fiber.Ctx) error {
	requested := c.Params("email")
	tokenEmail, err := identity.Email(c)
	if err != nil || requested != tokenEmail {
		return forbidden(c, "Forbidden: email mismatch")
	}

	fundings, err := h.fundings.ListByEmail(requested)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fundings)
}

func (h *FundingHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid funding ID")
	}

	if err := h.fundings.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: 1})
}

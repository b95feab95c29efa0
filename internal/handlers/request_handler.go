package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/identity"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requests *services.RequestService
}

func NewRequestHandler(requests *services.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	request, err := h.requests.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{InsertedID: request.ID.String()})
}

func (h *RequestHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	requests, pagination, err := h.requests.List(c.Query("status"), page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"donationRequests": requests,
		"totalCount":       pagination.Total,
		"totalPages":       pagination.TotalPages,
		"currentPage":      pagination.Page,
	})
}

// Recent returns the caller's three newest requests. Path email must match
// the token.
func (h *RequestHandler) Recent(c *fiber.Ctx) error {
	requested := c.Params("email")
	tokenEmail, err := identity.Email(c)
	if err != nil || requested != tokenEmail {
		return forbidden(c, "Forbidden: email mismatch")
	}

	requests, err := h.requests.Recent(requested)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(requests)
}

// ByRequester lists a requester's requests with an optional status filter.
// The email match is case-insensitive.
func (h *RequestHandler) ByRequester(c *fiber.Ctx) error {
	requests, err := h.requests.ListByRequester(c.Params("email"), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(requests)
}

func (h *RequestHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	request, err := h.requests.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(request)
}

// Edit updates allow-listed request fields without touching the state
// machine.
func (h *RequestHandler) Edit(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.EditDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	modified, err := h.requests.Edit(id, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Request updated", ModifiedCount: modified})
}

// ConfirmDonation performs the pending→inprogress transition, assigning the
// donor.
func (h *RequestHandler) ConfirmDonation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.ConfirmDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.requests.ConfirmDonation(id, req.DonorName, req.DonorEmail); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Confirmed", ModifiedCount: 1})
}

// SetStatus is the generic transition endpoint.
func (h *RequestHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	var req dto.TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.requests.Transition(id, req.Status, req.DonorName, req.DonorEmail); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Status updated successfully", ModifiedCount: 1})
}

func (h *RequestHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid request ID")
	}

	if err := h.requests.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: 1})
}

// VolunteerList returns the full request list (no pagination) with an
// optional status filter, for the volunteer dashboard.
func (h *RequestHandler) VolunteerList(c *fiber.Ctx) error {
	requests, err := h.requests.ListAll(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"data": requests})
}

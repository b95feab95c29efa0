package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/identity"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Register creates a new user. Public; role and status are forced to the
// donor/active defaults server-side.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.users.Register(&req)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{InsertedID: user.ID.String()})
}

// GetProfile returns the caller's own profile. The path email must match the
// verified token email.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	requested := c.Params("email")
	tokenEmail, err := identity.Email(c)
	if err != nil || requested != tokenEmail {
		return forbidden(c, "Forbidden: email mismatch")
	}

	user, err := h.users.GetByEmail(requested)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile applies allow-listed profile changes to the caller's own
// account.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	requested := c.Params("email")
	tokenEmail, err := identity.Email(c)
	if err != nil || requested != tokenEmail {
		return forbidden(c, "Forbidden: email mismatch")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	modified, err := h.users.UpdateProfile(requested, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "User updated", ModifiedCount: modified})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(users)
}

// ListDonors is the public donor search: active donors filtered by blood
// group, district and upazila.
func (h *UserHandler) ListDonors(c *fiber.Ctx) error {
	donors, err := h.users.ListDonors(
		c.Query("bloodGroup"),
		c.Query("district"),
		c.Query("upazila"),
	)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(donors)
}

func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.SetUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.users.SetStatus(id, req.Status); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Status updated", ModifiedCount: 1})
}

func (h *UserHandler) SetRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.users.SetRole(id, req.Role); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Role updated", ModifiedCount: 1})
}

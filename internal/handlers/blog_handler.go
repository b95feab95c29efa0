package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BlogHandler struct {
	blogs *services.BlogService
}

func NewBlogHandler(blogs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogs: blogs}
}

func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	blog, err := h.blogs.Create(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{InsertedID: blog.ID.String()})
}

func (h *BlogHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	blogs, pagination, err := h.blogs.List(c.Query("status"), page, limit)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"blogs":      blogs,
		"totalPages": pagination.TotalPages,
	})
}

func (h *BlogHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid blog ID")
	}

	blog, err := h.blogs.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(blog)
}

func (h *BlogHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid blog ID")
	}

	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.blogs.Update(id, &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MutationResponse{Message: "Blog updated", ModifiedCount: 1})
}

// SetStatus publishes or unpublishes a blog.
func (h *BlogHandler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid blog ID")
	}

	var req dto.SetBlogStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.blogs.SetStatus(id, req.Status); err != nil {
		return fail(c, err)
	}

	message := "Blog unpublished"
	if req.Status == models.BlogStatusPublished {
		message = "Blog published"
	}
	return c.JSON(dto.MutationResponse{Message: message, ModifiedCount: 1})
}

func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid blog ID")
	}

	if err := h.blogs.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.DeleteResponse{DeletedCount: 1})
}

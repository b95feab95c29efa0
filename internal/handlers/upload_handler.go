package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/dto"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	uploads *services.UploadService
}

func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Presign returns a time-limited S3 PUT URL for an avatar or blog thumbnail
// image.
func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	var req dto.PresignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.uploads.PresignImageUpload(req.Kind, req.ContentType)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

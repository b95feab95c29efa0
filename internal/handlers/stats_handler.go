package handlers

import (
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// StatsHandler serves the admin dashboard counters.
type StatsHandler struct {
	users    *services.UserService
	requests *services.RequestService
	fundings *services.FundingService
}

func NewStatsHandler(users *services.UserService, requests *services.RequestService, fundings *services.FundingService) *StatsHandler {
	return &StatsHandler{users: users, requests: requests, fundings: fundings}
}

func (h *StatsHandler) DonorsCount(c *fiber.Ctx) error {
	count, err := h.users.CountDonors()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *StatsHandler) RequestsCount(c *fiber.Ctx) error {
	count, err := h.requests.Count()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *StatsHandler) TotalFunds(c *fiber.Ctx) error {
	total, err := h.fundings.Total()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"total": total})
}

package api

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/services"
)

type DashboardHandler struct {
	service services.IDashboardService
}

func NewDashboardHandler(service services.IDashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

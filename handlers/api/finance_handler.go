package api

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/services"
)

type FinanceHandler struct {
	service services.ITransactionService
}

func NewFinanceHandler(service services.ITransactionService) *FinanceHandler {
	return &FinanceHandler{service: service}
}

// Summary GET /api/transactions/summary?siteId=&startDate=&endDate=
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}
	summary, err := h.service.Summary(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}

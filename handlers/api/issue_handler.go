package api

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/services"
)

// IssueHandler arıza uç noktaları. Oluşturan kullanıcı oturumdan alınır.
type IssueHandler struct {
	service services.IIssueService
}

func NewIssueHandler(service services.IIssueService) *IssueHandler {
	return &IssueHandler{service: service}
}

func (h *IssueHandler) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}
	issues, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(issues)
}

func (h *IssueHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	issue, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(issue)
}

func (h *IssueHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var in services.IssueInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	issue, err := h.service.Create(c.UserContext(), user.ID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}

func (h *IssueHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in services.IssueUpdateInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	issue, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(issue)
}

func (h *IssueHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c)
}

package api

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/services"
)

type CommentHandler struct {
	service services.ICommentService
}

func NewCommentHandler(service services.ICommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	issueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.service.List(c.UserContext(), issueID)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	issueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in services.CommentInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	comment, err := h.service.Create(c.UserContext(), issueID, user.ID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	issueID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), issueID, commentID); err != nil {
		return err
	}
	return deleted(c)
}

package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/models"
	"siteyonetim.app/services"
)

// UserHandler kullanıcı uç noktaları. Silme işlemi oturum sahibinin kendisini silmesini engeller.
type UserHandler struct {
	*Resource[models.User, services.UserInput, services.UserUpdateInput]
	service services.IUserService
}

func NewUserHandler(service services.IUserService) *UserHandler {
	return &UserHandler{
		Resource: NewResource[models.User, services.UserInput, services.UserUpdateInput](userCRUD{service}),
		service:  service,
	}
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), actor.ID, id); err != nil {
		return err
	}
	return deleted(c)
}

// userCRUD IUserService'i CRUDService'e uyarlar. Delete yalnızca UserHandler.Delete üzerinden çağrılır.
type userCRUD struct {
	services.IUserService
}

func (u userCRUD) Delete(_ context.Context, _ uint) error {
	return services.ErrForbidden
}

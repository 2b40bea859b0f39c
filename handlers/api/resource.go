package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/pkg/queryparams"
)

// CRUDService tek bir varlık ailesinin standart servis yüzüdür.
type CRUDService[T, C, U any] interface {
	List(ctx context.Context, params queryparams.ListParams) ([]T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, in C) (*T, error)
	Update(ctx context.Context, id uint, in U) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// Resource koleksiyon (GET, POST) ve öğe (GET, PUT, DELETE) uç noktalarını
// bir CRUDService üzerine kurar.
type Resource[T, C, U any] struct {
	service CRUDService[T, C, U]
}

func NewResource[T, C, U any](service CRUDService[T, C, U]) *Resource[T, C, U] {
	return &Resource[T, C, U]{service: service}
}

func (h *Resource[T, C, U]) List(c *fiber.Ctx) error {
	params, err := listParams(c)
	if err != nil {
		return err
	}
	items, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

func (h *Resource[T, C, U]) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func (h *Resource[T, C, U]) Create(c *fiber.Ctx) error {
	var in C
	if err := parseBody(c, &in); err != nil {
		return err
	}
	item, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Resource[T, C, U]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in U
	if err := parseBody(c, &in); err != nil {
		return err
	}
	item, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

func (h *Resource[T, C, U]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return deleted(c)
}

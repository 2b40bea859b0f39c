package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"siteyonetim.app/configs/configslog"
	"siteyonetim.app/services"
)

const internalErrorMessage = "Internal Server Error"

// Status servis hatasını HTTP durum koduna ve istemciye gösterilecek mesaja çevirir.
// Sınıflandırılamayan hatalar iç hatadır ve ayrıntısı istemciye verilmez.
func Status(err error) (int, string) {
	var (
		validation   services.ValidationError
		notFound     services.NotFoundError
		forbidden    services.ForbiddenError
		unauthorized services.UnauthorizedError
		fiberErr     *fiber.Error
	)
	switch {
	case errors.As(err, &validation):
		return fiber.StatusBadRequest, err.Error()
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, err.Error()
	case errors.As(err, &forbidden):
		return fiber.StatusForbidden, err.Error()
	case errors.As(err, &unauthorized):
		return fiber.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &fiberErr):
		if fiberErr.Code >= fiber.StatusInternalServerError {
			return fiberErr.Code, internalErrorMessage
		}
		if fiberErr.Code == fiber.StatusUnauthorized {
			return fiberErr.Code, "Unauthorized"
		}
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, internalErrorMessage
	}
}

// ErrorHandler handler'ların döndürdüğü hataları JSON gövdesine çevirir.
// 500 hataları istek kimliğiyle birlikte loglanır.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := Status(err)
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi",
			zap.String("request_id", RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// RequestID requestid ara katmanının atadığı kimliği döndürür.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/middlewares"
	"siteyonetim.app/pkg/authsession"
	"siteyonetim.app/pkg/queryparams"
	"siteyonetim.app/services"
)

const (
	errInvalidID    services.ValidationError = "geçersiz kimlik"
	errInvalidBody  services.ValidationError = "geçersiz istek gövdesi"
	errInvalidQuery services.ValidationError = "geçersiz sorgu parametresi"
)

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func listParams(c *fiber.Ctx) (queryparams.ListParams, error) {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return params, errInvalidQuery
	}
	return params, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return nil
}

// currentUser RequireAuth arkasındaki handler'larda oturum kullanıcısını döndürür.
func currentUser(c *fiber.Ctx) (*authsession.User, error) {
	u, ok := middlewares.CurrentSession(c).User()
	if !ok {
		return nil, services.ErrSessionInvalid
	}
	return u, nil
}

func deleted(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}

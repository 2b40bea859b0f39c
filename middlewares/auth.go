package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/models"
)

// LoginPath tarayıcı oturumu olmayan kullanıcıların yönlendirildiği sayfadır.
const LoginPath = "/giris"

// RequireAuth oturumu olmayan API isteklerini 401 ile keser. Gövde veri içermez.
func RequireAuth(c *fiber.Ctx) error {
	if !CurrentSession(c).IsAuthenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.Next()
}

// RequireRole kullanıcının rollerden birine sahip olmasını ister.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		if !s.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		if !s.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bu işlem için yetkiniz yok"})
		}
		return c.Next()
	}
}

// PageAuth oturumu olmayan tarayıcı isteklerini giriş sayfasına yönlendirir.
func PageAuth(c *fiber.Ctx) error {
	if !CurrentSession(c).IsAuthenticated() {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return c.Next()
}

// Guest giriş yapmış kullanıcıyı giriş sayfasından ana sayfaya gönderir.
func Guest(c *fiber.Ctx) error {
	if CurrentSession(c).IsAuthenticated() {
		return c.Redirect("/", fiber.StatusFound)
	}
	return c.Next()
}

// Yetki grupları
var (
	Staff    = []models.Role{models.RoleAdmin, models.RoleManager, models.RoleStaff}
	Managers = []models.Role{models.RoleAdmin, models.RoleManager}
	Admins   = []models.Role{models.RoleAdmin}
)

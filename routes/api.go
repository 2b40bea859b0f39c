package routes

import (
	"github.com/gofiber/fiber/v2"

	"siteyonetim.app/handlers/api"
	"siteyonetim.app/middlewares"
	"siteyonetim.app/models"
	"siteyonetim.app/services"
)

// crudHandlers bir varlık ailesinin beş standart handler'ıdır.
type crudHandlers interface {
	List(c *fiber.Ctx) error
	Get(c *fiber.Ctx) error
	Create(c *fiber.Ctx) error
	Update(c *fiber.Ctx) error
	Delete(c *fiber.Ctx) error
}

// resource koleksiyon ve öğe rotalarını kaydeder. readRoles boşsa okuma her oturuma açıktır.
func resource(group fiber.Router, path string, h crudHandlers, readRoles, writeRoles []models.Role) {
	read := []fiber.Handler{}
	if len(readRoles) > 0 {
		read = append(read, middlewares.RequireRole(readRoles...))
	}
	write := middlewares.RequireRole(writeRoles...)

	group.Get(path, append(read, h.List)...)
	group.Post(path, write, h.Create)
	group.Get(path+"/:id", append(read, h.Get)...)
	group.Put(path+"/:id", write, h.Update)
	group.Delete(path+"/:id", write, h.Delete)
}

func registerAPIRoutes(app *fiber.App, svc *services.Services) {
	apiGroup := app.Group("/api", middlewares.RequireAuth)

	resource(apiGroup, "/sites",
		api.NewResource[models.Site, services.SiteInput, services.SiteUpdateInput](svc.Sites),
		nil, middlewares.Managers)
	resource(apiGroup, "/blocks",
		api.NewResource[models.Block, services.BlockInput, services.BlockUpdateInput](svc.Blocks),
		nil, middlewares.Managers)
	resource(apiGroup, "/floors",
		api.NewResource[models.Floor, services.FloorInput, services.FloorUpdateInput](svc.Floors),
		nil, middlewares.Managers)
	resource(apiGroup, "/floor-areas",
		api.NewResource[models.FloorArea, services.FloorAreaInput, services.FloorAreaUpdateInput](svc.FloorAreas),
		nil, middlewares.Managers)
	resource(apiGroup, "/apartments",
		api.NewResource[models.Apartment, services.ApartmentInput, services.ApartmentUpdateInput](svc.Apartments),
		nil, middlewares.Managers)
	resource(apiGroup, "/common-areas",
		api.NewResource[models.CommonArea, services.CommonAreaInput, services.CommonAreaUpdateInput](svc.CommonAreas),
		nil, middlewares.Managers)
	resource(apiGroup, "/inventory",
		api.NewResource[models.InventoryItem, services.InventoryInput, services.InventoryUpdateInput](svc.Inventory),
		nil, middlewares.Staff)
	resource(apiGroup, "/maintenance",
		api.NewResource[models.MaintenanceRecord, services.MaintenanceInput, services.MaintenanceUpdateInput](svc.Maintenance),
		nil, middlewares.Staff)
	resource(apiGroup, "/meter-readings",
		api.NewResource[models.MeterReading, services.MeterReadingInput, services.MeterReadingUpdateInput](svc.Meters),
		nil, middlewares.Staff)

	finance := api.NewFinanceHandler(svc.Finance)
	apiGroup.Get("/transactions/summary", middlewares.RequireRole(middlewares.Managers...), finance.Summary)
	resource(apiGroup, "/transactions",
		api.NewResource[models.FinancialTransaction, services.TransactionInput, services.TransactionUpdateInput](svc.Finance),
		middlewares.Managers, middlewares.Managers)

	resource(apiGroup, "/users", api.NewUserHandler(svc.Users), middlewares.Admins, middlewares.Admins)

	registerIssueRoutes(apiGroup, svc)

	reports := api.NewReportHandler(svc.Reports)
	apiGroup.Post("/reports/word", middlewares.RequireRole(middlewares.Staff...), reports.Word)

	dashboard := api.NewDashboardHandler(svc.Dashboard)
	apiGroup.Get("/dashboard/stats", dashboard.Stats)
}

// Arıza, yorum ve medya oluşturma her oturuma açıktır; değiştirme ve silme personele aittir.
func registerIssueRoutes(apiGroup fiber.Router, svc *services.Services) {
	staff := middlewares.RequireRole(middlewares.Staff...)

	issues := api.NewIssueHandler(svc.Issues)
	apiGroup.Get("/issues", issues.List)
	apiGroup.Post("/issues", issues.Create)
	apiGroup.Get("/issues/:id", issues.Get)
	apiGroup.Put("/issues/:id", staff, issues.Update)
	apiGroup.Delete("/issues/:id", staff, issues.Delete)

	comments := api.NewCommentHandler(svc.Comments)
	apiGroup.Get("/issues/:id/comments", comments.List)
	apiGroup.Post("/issues/:id/comments", comments.Create)
	apiGroup.Delete("/issues/:id/comments/:commentId", staff, comments.Delete)

	media := api.NewMediaHandler(svc.Media)
	apiGroup.Post("/issues/:id/media", media.Upload)
	apiGroup.Delete("/issues/:id/media/:mediaId", staff, media.Delete)
	apiGroup.Post("/upload", media.Store)
}

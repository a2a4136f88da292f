package route

import (
	controller "bjjh_cleaning_backend/internals/features/settings/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SettingsAdminRoutes mounts class, area, default-message and account
// management under the admin group.
func SettingsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classController := &controller.ClassController{DB: db}
	areaController := &controller.AreaController{DB: db}
	defaultController := &controller.DefaultController{DB: db}
	accountController := &controller.AccountController{DB: db}

	classes := admin.Group("/classes")
	classes.Get("/", classController.List)
	classes.Post("/", classController.Create)
	classes.Put("/:id", classController.Update)
	classes.Delete("/:id", classController.Delete)

	areas := admin.Group("/areas")
	areas.Get("/", areaController.List)
	areas.Post("/", areaController.Create)
	areas.Put("/ranks", areaController.Reorder)
	areas.Put("/:id", areaController.Update)
	areas.Delete("/:id", areaController.Delete)
	areas.Post("/:id/move-up", areaController.MoveUp)
	areas.Post("/:id/move-down", areaController.MoveDown)

	defaults := admin.Group("/defaults")
	defaults.Get("/", defaultController.List)
	defaults.Post("/", defaultController.Create)
	defaults.Put("/ranks", defaultController.Reorder)
	defaults.Put("/:id", defaultController.Update)
	defaults.Delete("/:id", defaultController.Delete)
	defaults.Post("/:id/move-up", defaultController.MoveUp)
	defaults.Post("/:id/move-down", defaultController.MoveDown)

	accounts := admin.Group("/accounts")
	accounts.Get("/", accountController.List)
	accounts.Post("/", accountController.Create)
	accounts.Delete("/:id", accountController.Delete)
}

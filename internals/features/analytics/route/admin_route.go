package route

import (
	controller "bjjh_cleaning_backend/internals/features/analytics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AnalyticsAdminRoutes mounts the pivot endpoints under the admin group.
func AnalyticsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	analyticsController := &controller.AnalyticsController{DB: db}

	analytics := admin.Group("/analytics")
	analytics.Get("/defaults", analyticsController.GetDefaults)
	analytics.Get("/by-area", analyticsController.ByArea)
	analytics.Get("/by-class", analyticsController.ByClass)
}

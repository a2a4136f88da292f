package route

import (
	controller "bjjh_cleaning_backend/internals/features/home/controller"
	"bjjh_cleaning_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HomeAdminRoutes mounts the day-view report endpoints under the admin group.
func HomeAdminRoutes(admin fiber.Router, db *gorm.DB, store storage.ObjectStorage) {
	homeController := &controller.HomeController{DB: db, Storage: store}

	reports := admin.Group("/reports")
	reports.Get("/by-class", homeController.GetReportsByClass)
	reports.Get("/download", homeController.DownloadReports)
	reports.Delete("/:id", homeController.DeleteReport)
}

package route

import (
	controller "bjjh_cleaning_backend/internals/features/evaluate/controller"
	"bjjh_cleaning_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EvaluateAdminRoutes mounts the inspection workflow under the admin group.
func EvaluateAdminRoutes(admin fiber.Router, db *gorm.DB, store storage.ObjectStorage) {
	evaluateController := &controller.EvaluateController{DB: db, Storage: store}

	evaluate := admin.Group("/evaluate")
	evaluate.Get("/defaults", evaluateController.DefaultsWithRecency)
	evaluate.Get("/evidence-upload-urls", evaluateController.EvidenceUploadURLs)
	evaluate.Post("/evidence", evaluateController.UploadEvidence)
	evaluate.Post("/image-urls", evaluateController.ImageURLs)
	evaluate.Post("/reports", evaluateController.SubmitReport)
}

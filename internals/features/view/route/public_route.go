package route

import (
	controller "bjjh_cleaning_backend/internals/features/view/controller"
	"bjjh_cleaning_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ViewPublicRoutes mounts the unauthenticated record lookup.
func ViewPublicRoutes(public fiber.Router, db *gorm.DB, store storage.ObjectStorage) {
	viewController := &controller.ViewController{DB: db, Storage: store}

	public.Get("/records", viewController.GetRecords)
}

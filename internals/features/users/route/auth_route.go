package route

import (
	controller "bjjh_cleaning_backend/internals/features/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes mounts the public sign-in endpoint. Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := &controller.AuthController{DB: db}

	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/google", authController.GoogleLogin)
}

// AdminAuthRoutes mounts session endpoints behind the admin guard.
func AdminAuthRoutes(admin fiber.Router, db *gorm.DB) {
	authController := &controller.AuthController{DB: db}

	admin.Get("/me", authController.Me)
}

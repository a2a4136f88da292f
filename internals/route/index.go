package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsRoute "bjjh_cleaning_backend/internals/features/analytics/route"
	evaluateRoute "bjjh_cleaning_backend/internals/features/evaluate/route"
	homeRoute "bjjh_cleaning_backend/internals/features/home/route"
	settingsRoute "bjjh_cleaning_backend/internals/features/settings/route"
	usersRoute "bjjh_cleaning_backend/internals/features/users/route"
	viewRoute "bjjh_cleaning_backend/internals/features/view/route"
	"bjjh_cleaning_backend/internals/helpers/storage"
	authMiddleware "bjjh_cleaning_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.ObjectStorage) {
	log.Println("[INFO] Setting up AuthRoutes...")
	usersRoute.AuthRoutes(app, db)

	// PUBLIC → no auth, read-only record lookup
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/view")
	viewRoute.ViewPublicRoutes(public, db, store)

	// ADMIN → Google-verified allow-listed accounts only
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	usersRoute.AdminAuthRoutes(admin, db)

	log.Println("[INFO] Mounting Settings routes...")
	settingsRoute.SettingsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Evaluate routes...")
	evaluateRoute.EvaluateAdminRoutes(admin, db, store)

	log.Println("[INFO] Mounting Home routes...")
	homeRoute.HomeAdminRoutes(admin, db, store)

	log.Println("[INFO] Mounting Analytics routes...")
	analyticsRoute.AnalyticsAdminRoutes(admin, db)
}

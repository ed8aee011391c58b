// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "naviplan_backend/internals/features/trips/event/route"
	locationRoute "naviplan_backend/internals/features/trips/location/route"
	tripRoute "naviplan_backend/internals/features/trips/trip/route"
	userRoute "naviplan_backend/internals/features/users/user/route"
	middlewares "naviplan_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// JWT hanya untuk trip & event; auth dan location lookup tetap publik.
	app.Use("/api/trips", middlewares.AuthMiddleware())
	app.Use("/api/events", middlewares.AuthMiddleware())

	api := app.Group("/api")

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api, db)

	// ===================== LOCATION LOOKUP (public) =====================
	log.Println("[INFO] Setting up LocationRoutes...")
	locationRoute.LocationRoutes(api)

	// ===================== TRIP & EVENT (private) =====================
	log.Println("[INFO] Setting up Trip & Event routes...")
	tripRoute.TripRoutes(api, db)
	eventRoute.EventRoutes(api, db)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tripController "naviplan_backend/internals/features/trips/trip/controller"
)

func TripRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tripController.NewTripController(db)

	trips := r.Group("/trips")
	trips.Get("/", ctrl.List)             // GET    /api/trips
	trips.Post("/", ctrl.Create)          // POST   /api/trips
	trips.Get("/:tripId", ctrl.GetByID)   // GET    /api/trips/:tripId
	trips.Put("/:tripId", ctrl.Update)    // PUT    /api/trips/:tripId
	trips.Delete("/:tripId", ctrl.Delete) // DELETE /api/trips/:tripId
}

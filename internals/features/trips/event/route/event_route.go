package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "naviplan_backend/internals/features/trips/event/controller"
)

/*
Event routes — nested di bawah trip untuk list/create,
flat by id untuk get/update/delete.
Mount contoh: EventRoutes(app.Group("/api", authMiddleware), db)
*/
func EventRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	r.Get("/trips/:tripId/events", ctrl.ListByTrip) // GET    /api/trips/:tripId/events
	r.Post("/trips/:tripId/events", ctrl.Create)    // POST   /api/trips/:tripId/events

	events := r.Group("/events")
	events.Get("/:eventId", ctrl.GetByID)   // GET    /api/events/:eventId
	events.Put("/:eventId", ctrl.Update)    // PUT    /api/events/:eventId
	events.Delete("/:eventId", ctrl.Delete) // DELETE /api/events/:eventId
}

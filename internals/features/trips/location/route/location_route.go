package route

import (
	"github.com/gofiber/fiber/v2"

	"naviplan_backend/internals/configs"
	locationController "naviplan_backend/internals/features/trips/location/controller"
	locationService "naviplan_backend/internals/features/trips/location/service"
)

/*
Location lookup routes (public, tanpa auth — mengikuti perilaku lama).
Token Mapbox di-resolve lazy: wiring ini tidak gagal walau token kosong.
*/
func LocationRoutes(r fiber.Router) {
	tokens := locationService.NewTokenSource(configs.MapboxAccessToken)
	svc := locationService.NewMapboxService(tokens, configs.MapboxBaseURL, configs.MapboxTimeout)
	ctrl := locationController.NewLocationController(svc)

	locations := r.Group("/locations")
	locations.Get("/suggest", ctrl.Suggest)             // GET /api/locations/suggest?query=&sessionId=
	locations.Get("/retrieve", ctrl.Retrieve)           // GET /api/locations/retrieve?mapboxId=&sessionId=
	locations.Get("/retrieve/:mapboxId", ctrl.Retrieve) // GET /api/locations/retrieve/:mapboxId?sessionId=
}

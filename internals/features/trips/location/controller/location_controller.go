package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	locationService "naviplan_backend/internals/features/trips/location/service"
	helper "naviplan_backend/internals/helpers"
)

type LocationController struct {
	Service *locationService.MapboxService
}

func NewLocationController(svc *locationService.MapboxService) *LocationController {
	return &LocationController{Service: svc}
}

// GET /api/locations/suggest?query=...&sessionId=...
func (ctrl *LocationController) Suggest(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	sessionID := strings.TrimSpace(c.Query("sessionId"))

	if query == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing query")
	}
	if sessionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing sessionId")
	}

	result, err := ctrl.Service.Suggest(c.UserContext(), query, sessionID)
	if err != nil {
		return ctrl.mapServiceError(c, err, "Failed to fetch suggestions")
	}
	return helper.JsonOK(c, "Suggestions fetched successfully", result)
}

// GET /api/locations/retrieve?mapboxId=...&sessionId=...
// GET /api/locations/retrieve/:mapboxId?sessionId=...
func (ctrl *LocationController) Retrieve(c *fiber.Ctx) error {
	mapboxID := strings.TrimSpace(c.Params("mapboxId"))
	if mapboxID == "" {
		mapboxID = strings.TrimSpace(c.Query("mapboxId"))
	}
	sessionID := strings.TrimSpace(c.Query("sessionId"))

	if mapboxID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing mapboxId")
	}
	if sessionID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing sessionId")
	}

	result, err := ctrl.Service.Retrieve(c.UserContext(), mapboxID, sessionID)
	if err != nil {
		return ctrl.mapServiceError(c, err, "Failed to retrieve location")
	}
	return helper.JsonOK(c, "Location retrieved successfully", result)
}

// mapServiceError: precondition → 400, token belum di-set → 503,
// data provider tidak kepakai / call gagal → 502.
func (ctrl *LocationController) mapServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, locationService.ErrEmptyQuery),
		errors.Is(err, locationService.ErrEmptySessionID),
		errors.Is(err, locationService.ErrEmptyMapboxID):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, locationService.ErrTokenNotSet):
		log.Println("[ERROR] Mapbox token belum di-set:", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Geocoding is not configured")
	case errors.Is(err, locationService.ErrNoFeatures),
		errors.Is(err, locationService.ErrNoCoordinates):
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	default:
		log.Println("[ERROR]", fallback+":", err)
		return helper.JsonError(c, fiber.StatusBadGateway, fallback)
	}
}

package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventDTO "naviplan_backend/internals/features/trips/event/dto"
	eventRepo "naviplan_backend/internals/features/trips/event/repository"
	"naviplan_backend/internals/features/trips/event/service"
	helper "naviplan_backend/internals/helpers"
)

type EventController struct {
	Repo     *eventRepo.EventRepository
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		Repo:     eventRepo.NewEventRepository(db),
		Validate: validator.New(),
	}
}

// GET /api/trips/:tripId/events
func (ctrl *EventController) ListByTrip(c *fiber.Ctx) error {
	tripID, err := helper.ParseIDParam(c, "tripId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	events, err := ctrl.Repo.ListByTrip(c.UserContext(), tripID)
	if err != nil {
		log.Println("[ERROR] Failed to list events:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.JsonList(c, "Events fetched successfully", events)
}

// GET /api/events/:eventId
func (ctrl *EventController) GetByID(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "eventId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	event, err := ctrl.Repo.GetByID(c.UserContext(), eventID)
	if err != nil {
		return ctrl.mapRepoError(c, err, "Failed to fetch event")
	}
	return helper.JsonOK(c, "Event fetched successfully", event)
}

// POST /api/trips/:tripId/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	tripID, err := helper.ParseIDParam(c, "tripId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := ctrl.Repo.Create(c.UserContext(), tripID, req)
	if err != nil {
		return ctrl.mapRepoError(c, err, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created successfully", event)
}

// PUT /api/events/:eventId — full replace, bukan partial patch.
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "eventId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	event, err := ctrl.Repo.Update(c.UserContext(), eventID, req)
	if err != nil {
		return ctrl.mapRepoError(c, err, "Failed to update event")
	}
	return helper.JsonUpdated(c, "Event updated successfully", event)
}

// DELETE /api/events/:eventId
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	eventID, err := helper.ParseIDParam(c, "eventId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctrl.Repo.Delete(c.UserContext(), eventID); err != nil {
		return ctrl.mapRepoError(c, err, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted successfully", fiber.Map{"id": eventID})
}

// mapRepoError memetakan outcome repository ke status transport:
// validasi → 422, FK trip → 409, id tak ada → 404, sisanya 500.
func (ctrl *EventController) mapRepoError(c *fiber.Ctx, err error, fallback string) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, verr.Reason)
	case errors.Is(err, eventRepo.ErrTripNotFound):
		return helper.JsonError(c, fiber.StatusConflict, "Trip does not exist")
	case errors.Is(err, eventRepo.ErrEventNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	default:
		log.Println("[ERROR]", fallback+":", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}

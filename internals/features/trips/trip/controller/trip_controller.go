package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tripDTO "naviplan_backend/internals/features/trips/trip/dto"
	tripModel "naviplan_backend/internals/features/trips/trip/model"
	helper "naviplan_backend/internals/helpers"
)

type TripController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTripController(db *gorm.DB) *TripController {
	return &TripController{DB: db, Validate: validator.New()}
}

// GET /api/trips
func (ctrl *TripController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&tripModel.TripModel{})
	if userID, ok := c.Locals("user_id").(int); ok {
		q = q.Where("trip_user_id = ? OR trip_user_id IS NULL", userID)
	}

	var trips []tripModel.TripModel
	if err := q.Find(&trips).Error; err != nil {
		log.Println("[ERROR] Failed to list trips:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list trips")
	}

	out := make([]tripDTO.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripDTO.NewTripResponse(t))
	}
	return helper.JsonList(c, "Trips fetched successfully", out)
}

// GET /api/trips/:tripId
func (ctrl *TripController) GetByID(c *fiber.Ctx) error {
	tripID, err := helper.ParseIDParam(c, "tripId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var trip tripModel.TripModel
	if err := ctrl.DB.WithContext(c.UserContext()).Where("trip_id = ?", tripID).First(&trip).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
		}
		log.Println("[ERROR] Failed to fetch trip:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch trip")
	}
	return helper.JsonOK(c, "Trip fetched successfully", tripDTO.NewTripResponse(trip))
}

// POST /api/trips
func (ctrl *TripController) Create(c *fiber.Ctx) error {
	var req tripDTO.CreateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var userID *int
	if id, ok := c.Locals("user_id").(int); ok {
		userID = &id
	}

	trip := req.ToModel(userID)
	if err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&trip).Error
	}); err != nil {
		log.Println("[ERROR] Failed to create trip:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create trip")
	}
	return helper.JsonCreated(c, "Trip created successfully", tripDTO.NewTripResponse(trip))
}

// PUT /api/trips/:tripId — full replace nama + deskripsi.
func (ctrl *TripController) Update(c *fiber.Ctx) error {
	tripID, err := helper.ParseIDParam(c, "tripId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req tripDTO.UpdateTripRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	txErr := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&tripModel.TripModel{}).
			Where("trip_id = ?", tripID).
			Updates(map[string]any{
				"trip_name":        req.TripName,
				"trip_description": req.TripDescription,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
		}
		log.Println("[ERROR] Failed to update trip:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update trip")
	}
	return helper.JsonUpdated(c, "Trip updated successfully", fiber.Map{"trip_id": tripID})
}

// DELETE /api/trips/:tripId — event (dan lokasinya) ikut terhapus
// lewat FK ON DELETE CASCADE berantai.
func (ctrl *TripController) Delete(c *fiber.Ctx) error {
	tripID, err := helper.ParseIDParam(c, "tripId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	txErr := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("trip_id = ?", tripID).Delete(&tripModel.TripModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trip not found")
		}
		log.Println("[ERROR] Failed to delete trip:", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete trip")
	}
	return helper.JsonDeleted(c, "Trip deleted successfully", fiber.Map{"trip_id": tripID})
}

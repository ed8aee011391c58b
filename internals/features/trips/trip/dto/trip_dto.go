package dto

import (
	"strings"

	tripModel "naviplan_backend/internals/features/trips/trip/model"
)

type CreateTripRequest struct {
	TripName        string `json:"trip_name" validate:"required,max=100"`
	TripDescription string `json:"trip_description" validate:"max=500"`
}

type UpdateTripRequest struct {
	TripName        string `json:"trip_name" validate:"required,max=100"`
	TripDescription string `json:"trip_description" validate:"max=500"`
}

func (r *CreateTripRequest) Normalize() {
	r.TripName = strings.TrimSpace(r.TripName)
	r.TripDescription = strings.TrimSpace(r.TripDescription)
}

func (r *UpdateTripRequest) Normalize() {
	r.TripName = strings.TrimSpace(r.TripName)
	r.TripDescription = strings.TrimSpace(r.TripDescription)
}

func (r CreateTripRequest) ToModel(userID *int) tripModel.TripModel {
	return tripModel.TripModel{
		TripName:        r.TripName,
		TripDescription: r.TripDescription,
		TripUserID:      userID,
	}
}

type TripResponse struct {
	TripID          int    `json:"trip_id"`
	TripName        string `json:"trip_name"`
	TripDescription string `json:"trip_description"`
}

func NewTripResponse(m tripModel.TripModel) TripResponse {
	return TripResponse{
		TripID:          m.TripID,
		TripName:        m.TripName,
		TripDescription: m.TripDescription,
	}
}

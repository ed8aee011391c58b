package model

import (
	"naviplan_backend/internals/helpers/isoduration"

	tripModel "naviplan_backend/internals/features/trips/trip/model"
)

// EventModel merepresentasikan satu agenda di dalam trip.
//
// NOTE:
//   - event_duration disimpan sebagai teks ISO-8601 apa adanya (opaque),
//     decode/encode ditangani tipe isoduration.Duration.
//   - event_location adalah teks alamat bebas, hasil denormalisasi dari
//     location_address saat create/update (lihat repository).
//   - trip_id wajib; ON DELETE CASCADE supaya event ikut hilang bersama trip.
type EventModel struct {
	EventID          int                  `gorm:"column:event_id;primaryKey;autoIncrement" json:"id"`
	EventTitle       string               `gorm:"column:event_title;type:varchar(100);not null" json:"event_title"`
	EventDescription string               `gorm:"column:event_description;type:varchar(500);not null;default:''" json:"event_description"`
	EventLocation    string               `gorm:"column:event_location;type:varchar(255);not null" json:"event_location"`
	EventDuration    isoduration.Duration `gorm:"column:event_duration;type:varchar(200);not null" json:"event_duration"`

	TripID int `gorm:"column:trip_id;not null;index" json:"trip_id"`

	Trip *tripModel.TripModel `gorm:"foreignKey:TripID;references:TripID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EventModel) TableName() string { return "events" }

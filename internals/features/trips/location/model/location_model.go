package model

import (
	eventModel "naviplan_backend/internals/features/trips/event/model"
)

// LocationModel adalah baris lokasi ternormalisasi milik satu event.
//
// location_event_id unik — "paling banyak satu lokasi per event" dijaga di
// level skema, dan upsert memakai ON CONFLICT pada index ini supaya dua
// penulis konkuren konvergen, bukan balapan lookup-then-insert.
type LocationModel struct {
	LocationID        int     `gorm:"column:location_id;primaryKey;autoIncrement" json:"id"`
	LocationLatitude  float64 `gorm:"column:location_latitude;not null" json:"latitude"`
	LocationLongitude float64 `gorm:"column:location_longitude;not null" json:"longitude"`
	LocationAddress   *string `gorm:"column:location_address;type:text" json:"address,omitempty"`
	LocationTitle     *string `gorm:"column:location_title;type:text" json:"title,omitempty"`

	LocationEventID int `gorm:"column:location_event_id;not null;uniqueIndex:uq_locations_event_id" json:"event_id"`

	Event *eventModel.EventModel `gorm:"foreignKey:LocationEventID;references:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

func (LocationModel) TableName() string { return "locations" }

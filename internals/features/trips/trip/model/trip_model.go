package model

import "time"

// TripModel merepresentasikan rencana perjalanan milik user.
// Event di dalamnya ikut terhapus saat trip dihapus (FK CASCADE di events).
type TripModel struct {
	TripID          int       `gorm:"column:trip_id;primaryKey;autoIncrement" json:"trip_id"`
	TripName        string    `gorm:"column:trip_name;type:varchar(100);not null" json:"trip_name"`
	TripDescription string    `gorm:"column:trip_description;type:varchar(500);not null;default:''" json:"trip_description"`
	TripUserID      *int      `gorm:"column:trip_user_id;index" json:"trip_user_id,omitempty"`
	TripCreatedAt   time.Time `gorm:"column:trip_created_at;not null;autoCreateTime" json:"trip_created_at"`
	TripUpdatedAt   time.Time `gorm:"column:trip_updated_at;not null;autoUpdateTime" json:"trip_updated_at"`
}

func (TripModel) TableName() string { return "trips" }

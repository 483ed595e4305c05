package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyHoursJSON is one weekday entry of the opening_hours column.
type DailyHoursJSON struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// PlaceModel mirrors the 'places' table. Seq preserves insertion order for listings.
type PlaceModel struct {
	ID           uuid.UUID                                     `gorm:"type:uuid;primaryKey"`
	Seq          int64                                         `gorm:"autoIncrement;uniqueIndex:idx_places_seq"`
	Name         string                                        `gorm:"type:varchar(100);not null"`
	Address      string                                        `gorm:"type:text"`
	Description  string                                        `gorm:"type:text"`
	Latitude     float64                                       `gorm:"type:double precision;not null;index:idx_places_coordinates"`
	Longitude    float64                                       `gorm:"type:double precision;not null;index:idx_places_coordinates"`
	Sports       datatypes.JSONSlice[string]                   `gorm:"type:jsonb;not null"`
	OwnerID      *uuid.UUID                                    `gorm:"type:uuid;index:idx_places_owner"`
	IsActive     bool                                          `gorm:"not null"`
	Amenities    datatypes.JSONSlice[string]                   `gorm:"type:jsonb;not null"`
	OpeningHours datatypes.JSONType[map[string]DailyHoursJSON] `gorm:"type:jsonb;not null"`
	ContactPhone string                                        `gorm:"type:varchar(50)"`
	ContactEmail string                                        `gorm:"type:varchar(255)"`
	ContactURL   string                                        `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

package models

import "time"

// Route is a bus line with its ordered stops and optional geometry.
// A route always has at least one stop; supplying a new stop list on
// update replaces the previous one wholesale.
type Route struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Number    string    `gorm:"size:50;not null" json:"number"`
	StartTime string    `gorm:"size:10;not null" json:"start_time"`
	EndTime   string    `gorm:"size:10;not null" json:"end_time"`
	Frequency int       `gorm:"not null" json:"frequency"` // minutes between buses
	Visible   bool      `gorm:"default:true" json:"visible"`
	Distance  float64   `json:"distance"` // km
	Duration  int       `json:"duration"` // minutes
	Geometry  LineString `gorm:"type:text" json:"geometry"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Stops []Stop `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE" json:"stops"`
}

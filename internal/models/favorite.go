package models

import "time"

// Favorite is a place a user saved on the map.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	PlaceName   string    `gorm:"size:200;not null" json:"place_name"`
	Lat         float64   `gorm:"not null" json:"lat"`
	Lng         float64   `gorm:"not null" json:"lng"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Tags        TagMap    `gorm:"type:text" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

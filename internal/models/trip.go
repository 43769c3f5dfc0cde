package models

import "time"

// Trip is a planned journey between two places.
type Trip struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"index;not null" json:"user_id"`
	OriginName    string     `gorm:"size:200;not null" json:"origin_name"`
	OriginLat     float64    `gorm:"not null" json:"origin_lat"`
	OriginLng     float64    `gorm:"not null" json:"origin_lng"`
	DestName      string     `gorm:"size:200;not null" json:"dest_name"`
	DestLat       float64    `gorm:"not null" json:"dest_lat"`
	DestLng       float64    `gorm:"not null" json:"dest_lng"`
	DistanceKm    float64    `json:"distance_km"`
	EstimatedTime string     `gorm:"size:50" json:"estimated_time,omitempty"` // "45 min", "1h 20min"
	EstimatedCost float64    `json:"estimated_cost"`
	NumBuses      int        `gorm:"default:1" json:"num_buses"`
	ScheduledAt   *time.Time `json:"scheduled_at,omitempty"`
	Completed     bool       `gorm:"default:false" json:"completed"`
	CreatedAt     time.Time  `json:"created_at"`
}

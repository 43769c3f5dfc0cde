package models

import "time"

// UserStats accumulates usage statistics, one row per user. Created
// lazily on first access; counters only grow.
type UserStats struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TripsCompleted  int       `gorm:"default:0" json:"trips_completed"`
	TotalDistanceKm float64   `gorm:"default:0" json:"total_distance_km"`
	TotalSavings    float64   `gorm:"default:0" json:"total_savings"`
	PlacesVisited   int       `gorm:"default:0" json:"places_visited"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

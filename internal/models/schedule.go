package models

import "time"

// Schedule is a departure or arrival of a bus. Place holds the
// destination for departures and the origin for arrivals. Time keeps
// the display format the clients use ("7:30 am", "12:05 pm").
type Schedule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BusID     uint           `gorm:"index;not null" json:"bus_id"`
	Bus       Bus            `gorm:"foreignKey:BusID" json:"-"`
	Kind      ScheduleKind   `gorm:"size:10;not null" json:"kind"`
	Place     string         `gorm:"size:100;not null" json:"place"`
	Time      string         `gorm:"size:10;not null" json:"time"`
	Status    ScheduleStatus `gorm:"size:10;default:green" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

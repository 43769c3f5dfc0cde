package models

import "time"

// Bus is a transport line operating in one of the two zones.
type Bus struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TransportName string    `gorm:"size:100;not null" json:"transport_name"`
	Zone          Zone      `gorm:"size:10;not null" json:"zone"`
	Active        bool      `gorm:"default:true" json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Schedules []Schedule `gorm:"foreignKey:BusID;constraint:OnDelete:CASCADE" json:"schedules"`
}

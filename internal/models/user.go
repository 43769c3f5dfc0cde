package models

import "time"

// User is an account of the companion app. Users are never removed
// physically; deactivation flips Active and keeps the row and all
// owned records.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	ProfilePhoto string     `gorm:"type:text" json:"profile_photo,omitempty"`
	LastAccess   *time.Time `json:"last_access,omitempty"`
	Active       bool       `gorm:"default:true" json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Favorites     []Favorite     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Trips         []Trip         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"trips,omitempty"`
	Stats         *UserStats     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"stats,omitempty"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"notifications,omitempty"`
}

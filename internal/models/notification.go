package models

import "time"

// Notification is a message shown to one user, or to everyone when
// UserID is nil (global notification).
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	UserID    *uint            `gorm:"index" json:"user_id,omitempty"`
	Kind      NotificationKind `gorm:"size:10;default:info" json:"kind"`
	Title     string           `gorm:"size:200;not null" json:"title"`
	Body      string           `gorm:"type:text;not null" json:"body"`
	Read      bool             `gorm:"default:false" json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

package models

// Stop is one stop of a route. Order is the position in the owning
// route's sequence, reassigned contiguously from 0 whenever the stop
// list is replaced.
type Stop struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	RouteID uint    `gorm:"index;not null" json:"route_id"`
	Name    string  `gorm:"size:200;not null" json:"name"`
	Lat     float64 `gorm:"not null" json:"lat"`
	Lng     float64 `gorm:"not null" json:"lng"`
	Order   int     `gorm:"column:stop_order;not null" json:"order"`
}

package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// TripService manages planned trips.
type TripService struct {
	db    *gorm.DB
	users *UserService
}

func NewTripService(db *gorm.DB) *TripService {
	return &TripService{db: db, users: NewUserService(db)}
}

type TripInput struct {
	OriginName    string     `json:"origin_name" binding:"required,max=200"`
	OriginLat     float64    `json:"origin_lat" binding:"min=-90,max=90"`
	OriginLng     float64    `json:"origin_lng" binding:"min=-180,max=180"`
	DestName      string     `json:"dest_name" binding:"required,max=200"`
	DestLat       float64    `json:"dest_lat" binding:"min=-90,max=90"`
	DestLng       float64    `json:"dest_lng" binding:"min=-180,max=180"`
	DistanceKm    float64    `json:"distance_km"`
	EstimatedTime string     `json:"estimated_time" binding:"omitempty,max=50"`
	EstimatedCost float64    `json:"estimated_cost"`
	NumBuses      int        `json:"num_buses"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

func (s *TripService) Create(userID uint, in TripInput) (*models.Trip, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	trip := models.Trip{
		UserID:        userID,
		OriginName:    in.OriginName,
		OriginLat:     in.OriginLat,
		OriginLng:     in.OriginLng,
		DestName:      in.DestName,
		DestLat:       in.DestLat,
		DestLng:       in.DestLng,
		DistanceKm:    in.DistanceKm,
		EstimatedTime: in.EstimatedTime,
		EstimatedCost: in.EstimatedCost,
		NumBuses:      in.NumBuses,
		ScheduledAt:   in.ScheduledAt,
	}
	if trip.NumBuses <= 0 {
		trip.NumBuses = 1
	}
	if err := s.db.Create(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// ListForUser returns the user's trips, most recently created first.
func (s *TripService) ListForUser(userID uint, completedOnly bool) ([]models.Trip, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	query := s.db.Where("user_id = ?", userID)
	if completedOnly {
		query = query.Where("completed = ?", true)
	}
	var trips []models.Trip
	if err := query.Order("created_at DESC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

type TripPatch struct {
	Completed *bool `json:"completed"`
}

// Update marks a trip completed (or not). Other trip fields are
// immutable after creation.
func (s *TripService) Update(id uint, patch TripPatch) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trip %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if patch.Completed != nil {
		if err := s.db.Model(&trip).Update("completed", *patch.Completed).Error; err != nil {
			return nil, err
		}
		trip.Completed = *patch.Completed
	}
	return &trip, nil
}

func (s *TripService) Delete(id uint) error {
	result := s.db.Delete(&models.Trip{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("trip %d: %w", id, ErrNotFound)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// BusStopService manages the physical stops shown on the map.
type BusStopService struct {
	db *gorm.DB
}

func NewBusStopService(db *gorm.DB) *BusStopService {
	return &BusStopService{db: db}
}

type BusStopInput struct {
	Name        string      `json:"name" binding:"required,max=200"`
	Lat         float64     `json:"lat" binding:"min=-90,max=90"`
	Lng         float64     `json:"lng" binding:"min=-180,max=180"`
	Zone        models.Zone `json:"zone" binding:"required,oneof=south north"`
	Description string      `json:"description"`
}

func (s *BusStopService) Create(in BusStopInput) (*models.BusStop, error) {
	stop := models.BusStop{
		Name:        in.Name,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Zone:        in.Zone,
		Description: in.Description,
		Active:      true,
	}
	if err := s.db.Create(&stop).Error; err != nil {
		return nil, err
	}
	return &stop, nil
}

func (s *BusStopService) Get(id uint) (*models.BusStop, error) {
	var stop models.BusStop
	if err := s.db.First(&stop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bus stop %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &stop, nil
}

func (s *BusStopService) List(zone models.Zone, activeOnly bool, skip, limit int) ([]models.BusStop, error) {
	query := s.db.Model(&models.BusStop{})
	if zone != "" {
		query = query.Where("zone = ?", zone)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var stops []models.BusStop
	if err := query.Offset(skip).Limit(normalizeLimit(limit)).Find(&stops).Error; err != nil {
		return nil, err
	}
	return stops, nil
}

type BusStopPatch struct {
	Name        *string      `json:"name" binding:"omitempty,min=1,max=200"`
	Lat         *float64     `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64     `json:"lng" binding:"omitempty,min=-180,max=180"`
	Zone        *models.Zone `json:"zone" binding:"omitempty,oneof=south north"`
	Description *string      `json:"description"`
	Active      *bool        `json:"active"`
}

func (s *BusStopService) Update(id uint, patch BusStopPatch) (*models.BusStop, error) {
	stop, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		stop.Name = *patch.Name
	}
	if patch.Lat != nil {
		stop.Lat = *patch.Lat
	}
	if patch.Lng != nil {
		stop.Lng = *patch.Lng
	}
	if patch.Zone != nil {
		stop.Zone = *patch.Zone
	}
	if patch.Description != nil {
		stop.Description = *patch.Description
	}
	if patch.Active != nil {
		stop.Active = *patch.Active
	}
	if err := s.db.Save(stop).Error; err != nil {
		return nil, err
	}
	return stop, nil
}

func (s *BusStopService) Delete(id uint) error {
	result := s.db.Delete(&models.BusStop{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("bus stop %d: %w", id, ErrNotFound)
	}
	return nil
}

// Nearby returns active stops whose latitude and longitude deltas from
// the query point are each under radiusKm/111 degrees. This is a
// bounding-box approximation over a linear scan, O(n) in the active
// stop count; fine at the scale this application serves.
func (s *BusStopService) Nearby(lat, lng, radiusKm float64) ([]models.BusStop, error) {
	var stops []models.BusStop
	if err := s.db.Where("active = ?", true).Find(&stops).Error; err != nil {
		return nil, err
	}

	maxDelta := radiusKm / kmPerDegree
	nearby := []models.BusStop{}
	for _, stop := range stops {
		if math.Abs(stop.Lat-lat) < maxDelta && math.Abs(stop.Lng-lng) < maxDelta {
			nearby = append(nearby, stop)
		}
	}
	return nearby, nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twpayne/go-geom"
	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// kmPerDegree is the flat-earth scale the whole application uses:
// 111 km per degree of latitude. Longitude error grows away from the
// equator, acceptable at city scale.
const kmPerDegree = 111.0

// RouteService manages routes and their ordered stops. Every mutation
// touching stops runs in one transaction so a route is never observable
// with a partial stop list.
type RouteService struct {
	db *gorm.DB
}

func NewRouteService(db *gorm.DB) *RouteService {
	return &RouteService{db: db}
}

type StopInput struct {
	Name string  `json:"name" binding:"required,max=200"`
	Lat  float64 `json:"lat" binding:"min=-90,max=90"`
	Lng  float64 `json:"lng" binding:"min=-180,max=180"`
}

type RouteInput struct {
	Name      string            `json:"name" binding:"required,max=100"`
	Number    string            `json:"number" binding:"required,max=50"`
	StartTime string            `json:"start_time" binding:"required,max=10"`
	EndTime   string            `json:"end_time" binding:"required,max=10"`
	Frequency int               `json:"frequency" binding:"required,gt=0"`
	Visible   *bool             `json:"visible"`
	Distance  *float64          `json:"distance"`
	Duration  int               `json:"duration"`
	Geometry  models.LineString `json:"geometry"`
	Stops     []StopInput       `json:"stops" binding:"required,min=1,dive"`
}

// Create inserts the route and its stops, ordered 0..n-1 by input
// position. When the caller supplies no distance it is estimated from
// the geometry.
func (s *RouteService) Create(in RouteInput) (*models.Route, error) {
	if len(in.Stops) == 0 {
		return nil, fmt.Errorf("a route needs at least one stop: %w", ErrInvalid)
	}

	route := models.Route{
		Name:      in.Name,
		Number:    in.Number,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Frequency: in.Frequency,
		Visible:   true,
		Duration:  in.Duration,
		Geometry:  in.Geometry,
	}
	if in.Visible != nil {
		route.Visible = *in.Visible
	}
	if in.Distance != nil {
		route.Distance = *in.Distance
	} else {
		route.Distance = estimateDistanceKm(in.Geometry)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&route).Error; err != nil {
			return err
		}
		return createStops(tx, route.ID, in.Stops)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(route.ID)
}

func (s *RouteService) Get(id uint) (*models.Route, error) {
	var route models.Route
	err := s.db.Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("stop_order")
	}).First(&route, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("route %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &route, nil
}

// List returns all routes, visible or not, in insertion order.
func (s *RouteService) List(skip, limit int) ([]models.Route, error) {
	var routes []models.Route
	err := s.db.Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("stop_order")
	}).Offset(skip).Limit(normalizeLimit(limit)).Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

type RoutePatch struct {
	Name      *string            `json:"name" binding:"omitempty,min=1,max=100"`
	Number    *string            `json:"number" binding:"omitempty,min=1,max=50"`
	StartTime *string            `json:"start_time" binding:"omitempty,max=10"`
	EndTime   *string            `json:"end_time" binding:"omitempty,max=10"`
	Frequency *int               `json:"frequency" binding:"omitempty,gt=0"`
	Visible   *bool              `json:"visible"`
	Distance  *float64           `json:"distance"`
	Duration  *int               `json:"duration"`
	Geometry  *models.LineString `json:"geometry"`
	Stops     []StopInput        `json:"stops" binding:"omitempty,min=1,dive"`
}

// Update applies only the supplied fields. A supplied stop list
// replaces the existing one wholesale, reindexed from 0; a supplied
// geometry replaces the stored geometry wholesale.
func (s *RouteService) Update(id uint, patch RoutePatch) (*models.Route, error) {
	route, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if patch.Stops != nil {
			if err := tx.Where("route_id = ?", route.ID).Delete(&models.Stop{}).Error; err != nil {
				return err
			}
			if err := createStops(tx, route.ID, patch.Stops); err != nil {
				return err
			}
		}
		if patch.Name != nil {
			route.Name = *patch.Name
		}
		if patch.Number != nil {
			route.Number = *patch.Number
		}
		if patch.StartTime != nil {
			route.StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			route.EndTime = *patch.EndTime
		}
		if patch.Frequency != nil {
			route.Frequency = *patch.Frequency
		}
		if patch.Visible != nil {
			route.Visible = *patch.Visible
		}
		if patch.Duration != nil {
			route.Duration = *patch.Duration
		}
		if patch.Geometry != nil {
			route.Geometry = *patch.Geometry
		}
		if patch.Distance != nil {
			route.Distance = *patch.Distance
		} else if patch.Geometry != nil {
			route.Distance = estimateDistanceKm(*patch.Geometry)
		}
		route.Stops = nil
		return tx.Omit("Stops").Save(route).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the route and all its stops.
func (s *RouteService) Delete(id uint) error {
	route, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", route.ID).Delete(&models.Stop{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Route{}, route.ID).Error
	})
}

// Search matches term as a case-insensitive substring of the route
// name or number.
func (s *RouteService) Search(term string) ([]models.Route, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var routes []models.Route
	err := s.db.Preload("Stops", func(db *gorm.DB) *gorm.DB {
		return db.Order("stop_order")
	}).Where("LOWER(name) LIKE ? OR LOWER(number) LIKE ?", pattern, pattern).
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func createStops(tx *gorm.DB, routeID uint, inputs []StopInput) error {
	for i, in := range inputs {
		stop := models.Stop{
			RouteID: routeID,
			Name:    in.Name,
			Lat:     in.Lat,
			Lng:     in.Lng,
			Order:   i,
		}
		if err := tx.Create(&stop).Error; err != nil {
			return err
		}
	}
	return nil
}

// estimateDistanceKm measures the geometry as a planar line string in
// degrees and scales by kmPerDegree. Good enough for the route cards
// the clients show; callers that know better supply distance directly.
func estimateDistanceKm(geometry models.LineString) float64 {
	if len(geometry) < 2 {
		return 0
	}
	coords := make([]geom.Coord, len(geometry))
	for i, p := range geometry {
		coords[i] = geom.Coord{p.Lng, p.Lat}
	}
	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return 0
	}
	return line.Length() * kmPerDegree
}

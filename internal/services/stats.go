package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// savingsMultiplier models the cost avoided versus an alternative
// priced at four times the bus fare.
const savingsMultiplier = 3

// StatsService manages per-user counters and the admin dashboard
// aggregate.
type StatsService struct {
	db    *gorm.DB
	users *UserService
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db, users: NewUserService(db)}
}

// GetForUser returns the user's statistics, creating a zero-valued row
// on first access. This is the one read that may write.
func (s *StatsService) GetForUser(userID uint) (*models.UserStats, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	var stats models.UserStats
	err := s.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = models.UserStats{UserID: userID}
		err = s.db.Create(&stats).Error
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type CompletedTripInput struct {
	DistanceKm float64 `json:"distance_km" binding:"required,gt=0"`
	Cost       float64 `json:"cost" binding:"required,gt=0"`
	NewPlace   bool    `json:"new_place"`
}

// RegisterCompletedTrip is the only mutation of user statistics:
// counters grow, never shrink.
func (s *StatsService) RegisterCompletedTrip(userID uint, in CompletedTripInput) (*models.UserStats, error) {
	if in.DistanceKm <= 0 || in.Cost <= 0 {
		return nil, fmt.Errorf("distance and cost must be positive: %w", ErrInvalid)
	}
	stats, err := s.GetForUser(userID)
	if err != nil {
		return nil, err
	}

	stats.TripsCompleted++
	stats.TotalDistanceKm += in.DistanceKm
	stats.TotalSavings += in.Cost * savingsMultiplier
	if in.NewPlace {
		stats.PlacesVisited++
	}
	if err := s.db.Save(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// DashboardStats is the read-only cross-entity aggregate for the admin
// dashboard. Every field is zero on an empty database, never null.
type DashboardStats struct {
	TotalUsers       int64   `json:"total_users"`
	TotalRoutes      int64   `json:"total_routes"`
	TotalBuses       int64   `json:"total_buses"`
	TripsToday       int64   `json:"trips_today"`
	ActiveUsersMonth int64   `json:"active_users_month"`
	DistanceKmMonth  float64 `json:"distance_km_month"`
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var out DashboardStats

	if err := s.db.Model(&models.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Route{}).Count(&out.TotalRoutes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Bus{}).Count(&out.TotalBuses).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	err := s.db.Model(&models.Trip{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)).
		Count(&out.TripsToday).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.User{}).
		Where("last_access >= ?", monthStart).
		Count(&out.ActiveUsersMonth).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Trip{}).
		Where("completed = ? AND created_at >= ?", true, monthStart).
		Select("COALESCE(SUM(distance_km), 0)").
		Scan(&out.DistanceKmMonth).Error
	if err != nil {
		return nil, err
	}

	return &out, nil
}

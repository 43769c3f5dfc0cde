package services

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// timePattern is the fixed 12-hour display format schedules use,
// e.g. "7:30 am" or "11:05 pm".
var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2} (am|pm)$`)

// BusService manages transport lines and their schedules.
type BusService struct {
	db *gorm.DB
}

func NewBusService(db *gorm.DB) *BusService {
	return &BusService{db: db}
}

type BusInput struct {
	TransportName string      `json:"transport_name" binding:"required,max=100"`
	Zone          models.Zone `json:"zone" binding:"required,oneof=south north"`
}

func (s *BusService) Create(in BusInput) (*models.Bus, error) {
	bus := models.Bus{
		TransportName: in.TransportName,
		Zone:          in.Zone,
		Active:        true,
	}
	if err := s.db.Create(&bus).Error; err != nil {
		return nil, err
	}
	bus.Schedules = []models.Schedule{}
	return &bus, nil
}

func (s *BusService) Get(id uint) (*models.Bus, error) {
	var bus models.Bus
	if err := s.db.Preload("Schedules").First(&bus, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("bus %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &bus, nil
}

// List returns buses with their schedules. Inactive buses are hidden
// unless activeOnly is switched off; zone narrows to one service area.
func (s *BusService) List(zone models.Zone, activeOnly bool, skip, limit int) ([]models.Bus, error) {
	query := s.db.Preload("Schedules")
	if zone != "" {
		query = query.Where("zone = ?", zone)
	}
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var buses []models.Bus
	if err := query.Offset(skip).Limit(normalizeLimit(limit)).Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}

type BusPatch struct {
	TransportName *string      `json:"transport_name" binding:"omitempty,min=1,max=100"`
	Zone          *models.Zone `json:"zone" binding:"omitempty,oneof=south north"`
	Active        *bool        `json:"active"`
}

func (s *BusService) Update(id uint, patch BusPatch) (*models.Bus, error) {
	bus, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if patch.TransportName != nil {
		bus.TransportName = *patch.TransportName
	}
	if patch.Zone != nil {
		bus.Zone = *patch.Zone
	}
	if patch.Active != nil {
		bus.Active = *patch.Active
	}
	if err := s.db.Omit("Schedules").Save(bus).Error; err != nil {
		return nil, err
	}
	return bus, nil
}

// Delete removes the bus and all its schedules.
func (s *BusService) Delete(id uint) error {
	bus, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bus_id = ?", bus.ID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bus{}, bus.ID).Error
	})
}

type ScheduleInput struct {
	Kind   models.ScheduleKind   `json:"kind" binding:"required,oneof=departure arrival"`
	Place  string                `json:"place" binding:"required,max=100"`
	Time   string                `json:"time" binding:"required"`
	Status models.ScheduleStatus `json:"status" binding:"omitempty,oneof=green yellow red"`
}

// AddSchedule attaches a schedule to an existing bus. The time string
// must match the fixed 12-hour pattern.
func (s *BusService) AddSchedule(busID uint, in ScheduleInput) (*models.Schedule, error) {
	if _, err := s.Get(busID); err != nil {
		return nil, err
	}
	if !timePattern.MatchString(in.Time) {
		return nil, fmt.Errorf("time %q must match H:MM am|pm: %w", in.Time, ErrInvalid)
	}
	schedule := models.Schedule{
		BusID:  busID,
		Kind:   in.Kind,
		Place:  in.Place,
		Time:   in.Time,
		Status: models.StatusGreen,
	}
	if in.Status != "" {
		schedule.Status = in.Status
	}
	if err := s.db.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

type SchedulePatch struct {
	Kind   *models.ScheduleKind   `json:"kind" binding:"omitempty,oneof=departure arrival"`
	Place  *string                `json:"place" binding:"omitempty,min=1,max=100"`
	Time   *string                `json:"time"`
	Status *models.ScheduleStatus `json:"status" binding:"omitempty,oneof=green yellow red"`
}

// UpdateSchedule changes any subset of schedule fields; status updates
// are the common case for the operator dashboard.
func (s *BusService) UpdateSchedule(id uint, patch SchedulePatch) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := s.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if patch.Time != nil && !timePattern.MatchString(*patch.Time) {
		return nil, fmt.Errorf("time %q must match H:MM am|pm: %w", *patch.Time, ErrInvalid)
	}
	if patch.Kind != nil {
		schedule.Kind = *patch.Kind
	}
	if patch.Place != nil {
		schedule.Place = *patch.Place
	}
	if patch.Time != nil {
		schedule.Time = *patch.Time
	}
	if patch.Status != nil {
		schedule.Status = *patch.Status
	}
	if err := s.db.Omit("Bus").Save(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *BusService) DeleteSchedule(id uint) error {
	result := s.db.Delete(&models.Schedule{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("schedule %d: %w", id, ErrNotFound)
	}
	return nil
}

// Departures lists departure schedules of active buses in a zone.
func (s *BusService) Departures(zone models.Zone) ([]models.Schedule, error) {
	return s.schedulesByZone(zone, models.KindDeparture)
}

// Arrivals lists arrival schedules of active buses in a zone.
func (s *BusService) Arrivals(zone models.Zone) ([]models.Schedule, error) {
	return s.schedulesByZone(zone, models.KindArrival)
}

func (s *BusService) schedulesByZone(zone models.Zone, kind models.ScheduleKind) ([]models.Schedule, error) {
	if !zone.Valid() {
		return nil, fmt.Errorf("unknown zone %q: %w", zone, ErrInvalid)
	}
	var schedules []models.Schedule
	err := s.db.Preload("Bus").
		Joins("JOIN buses ON buses.id = schedules.bus_id").
		Where("buses.zone = ? AND buses.active = ? AND schedules.kind = ?", zone, true, kind).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

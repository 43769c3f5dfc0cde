package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// NotificationService manages targeted and global notifications.
type NotificationService struct {
	db    *gorm.DB
	users *UserService
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db, users: NewUserService(db)}
}

type NotificationInput struct {
	UserID *uint                   `json:"user_id"` // nil = global notification
	Kind   models.NotificationKind `json:"kind" binding:"omitempty,oneof=info warning alert success"`
	Title  string                  `json:"title" binding:"required,max=200"`
	Body   string                  `json:"body" binding:"required"`
}

// Create stores one notification; a nil target makes it visible to
// every user.
func (s *NotificationService) Create(in NotificationInput) (*models.Notification, error) {
	if in.UserID != nil {
		if _, err := s.users.Get(*in.UserID); err != nil {
			return nil, err
		}
	}
	notif := models.Notification{
		UserID: in.UserID,
		Kind:   models.NotifInfo,
		Title:  in.Title,
		Body:   in.Body,
	}
	if in.Kind != "" {
		notif.Kind = in.Kind
	}
	if err := s.db.Create(&notif).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

// ListForUser returns the union of the user's notifications and the
// global ones, newest first.
func (s *NotificationService) ListForUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	query := s.db.Where("user_id = ? OR user_id IS NULL", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}
	var notifs []models.Notification
	if err := query.Order("created_at DESC").Find(&notifs).Error; err != nil {
		return nil, err
	}
	return notifs, nil
}

func (s *NotificationService) MarkRead(id uint, read bool) (*models.Notification, error) {
	var notif models.Notification
	if err := s.db.First(&notif, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := s.db.Model(&notif).Update("read", read).Error; err != nil {
		return nil, err
	}
	notif.Read = read
	return &notif, nil
}

func (s *NotificationService) Delete(id uint) error {
	result := s.db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %d: %w", id, ErrNotFound)
	}
	return nil
}

// Broadcast fans one notification row out to every active user inside
// a single transaction and returns how many were created. Inactive
// users are skipped; no global row is written.
func (s *NotificationService) Broadcast(in NotificationInput) (int, error) {
	kind := models.NotifInfo
	if in.Kind != "" {
		kind = in.Kind
	}

	var count int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var users []models.User
		if err := tx.Where("active = ?", true).Find(&users).Error; err != nil {
			return err
		}
		for _, user := range users {
			userID := user.ID
			notif := models.Notification{
				UserID: &userID,
				Kind:   kind,
				Title:  in.Title,
				Body:   in.Body,
			}
			if err := tx.Create(&notif).Error; err != nil {
				return err
			}
		}
		count = len(users)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

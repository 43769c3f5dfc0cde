package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"transit_companion/internal/auth"
	"transit_companion/internal/models"
)

// UserService manages accounts. Deletion is always logical: the row
// stays, Active flips to false, and owned records are untouched.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// Register creates the user together with its zero-valued statistics
// row in one transaction. Duplicate emails report a conflict.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	now := time.Now()
	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: auth.HashPassword(in.Password),
		LastAccess:   &now,
		Active:       true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", in.Email).First(&existing).Error
		if err == nil {
			return fmt.Errorf("email %s already registered: %w", in.Email, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("email %s already registered: %w", in.Email, ErrConflict)
			}
			return err
		}
		return tx.Create(&models.UserStats{UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials. Unknown email and wrong password report
// the same failure so callers cannot enumerate accounts; a deactivated
// account is reported distinctly. A successful login bumps LastAccess.
func (s *UserService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
		}
		return nil, err
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password: %w", ErrUnauthorized)
	}
	if !user.Active {
		return nil, fmt.Errorf("account is deactivated: %w", ErrUnauthorized)
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_access", now).Error; err != nil {
		return nil, err
	}
	user.LastAccess = &now
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// List returns users in insertion order. activeOnly is off by default:
// administration screens need deactivated accounts too.
func (s *UserService) List(skip, limit int, activeOnly bool) ([]models.User, error) {
	query := s.db.Model(&models.User{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	var users []models.User
	if err := query.Offset(skip).Limit(normalizeLimit(limit)).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

type UserPatch struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email        *string `json:"email" binding:"omitempty,email,max=255"`
	ProfilePhoto *string `json:"profile_photo"`
}

// Update applies only the supplied fields. Email uniqueness is
// re-checked only when the email actually changes.
func (s *UserService) Update(id uint, patch UserPatch) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		var existing models.User
		err := s.db.Where("email = ?", *patch.Email).First(&existing).Error
		if err == nil {
			return nil, fmt.Errorf("email %s already in use: %w", *patch.Email, ErrConflict)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.ProfilePhoto != nil {
		user.ProfilePhoto = *patch.ProfilePhoto
	}

	if err := s.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email already in use: %w", ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword requires the current password to verify before the
// new record is stored.
func (s *UserService) ChangePassword(id uint, current, next string) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(current, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", ErrUnauthorized)
	}
	return s.db.Model(user).Update("password_hash", auth.HashPassword(next)).Error
}

// Deactivate is the delete operation for users: logical only.
func (s *UserService) Deactivate(id uint) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Model(user).Update("active", false).Error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

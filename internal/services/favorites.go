package services

import (
	"fmt"

	"gorm.io/gorm"

	"transit_companion/internal/models"
)

// FavoriteService manages the places a user saved.
type FavoriteService struct {
	db    *gorm.DB
	users *UserService
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db, users: NewUserService(db)}
}

type FavoriteInput struct {
	PlaceName   string        `json:"place_name" binding:"required,max=200"`
	Lat         float64       `json:"lat" binding:"min=-90,max=90"`
	Lng         float64       `json:"lng" binding:"min=-180,max=180"`
	Description string        `json:"description"`
	Tags        models.TagMap `json:"tags"`
}

func (s *FavoriteService) Create(userID uint, in FavoriteInput) (*models.Favorite, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	favorite := models.Favorite{
		UserID:      userID,
		PlaceName:   in.PlaceName,
		Lat:         in.Lat,
		Lng:         in.Lng,
		Description: in.Description,
		Tags:        in.Tags,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return nil, err
	}
	if favorite.Tags == nil {
		favorite.Tags = models.TagMap{}
	}
	return &favorite, nil
}

func (s *FavoriteService) ListForUser(userID uint) ([]models.Favorite, error) {
	if _, err := s.users.Get(userID); err != nil {
		return nil, err
	}
	var favorites []models.Favorite
	if err := s.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *FavoriteService) Delete(id uint) error {
	result := s.db.Delete(&models.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("favorite %d: %w", id, ErrNotFound)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Active returns guests currently staying, oldest check-in first.
func (s *GuestService) Active() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.
		Where("status = ?", models.GuestStatusActive).
		Order("check_in_date ASC").
		Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list active guests: %w", err)
	}
	return guests, nil
}

// All returns the full ledger including checked-out history, newest first.
func (s *GuestService) All() ([]models.Guest, error) {
	var guests []models.Guest
	if err := s.DB.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// ByRoom returns the active guest occupying roomID, or NotFoundError.
func (s *GuestService) ByRoom(roomID uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.
		Where("room_id = ? AND status = ?", roomID, models.GuestStatusActive).
		First(&guest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Guest{}, &NotFoundError{Message: "No active guest found in this room"}
		}
		return models.Guest{}, fmt.Errorf("failed to load guest for room %d: %w", roomID, err)
	}
	return guest, nil
}

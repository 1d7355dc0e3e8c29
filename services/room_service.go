package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// GetAll returns the whole catalog ordered by id.
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// GetByID returns one room or NotFoundError.
func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, &NotFoundError{Message: "Room not found"}
		}
		return models.Room{}, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return room, nil
}

// Available returns unoccupied rooms ordered by id, optionally filtered by
// room type ("" = all types).
func (s *RoomService) Available(roomType string) ([]models.Room, error) {
	q := s.DB.Where("is_occupied = ?", false)
	if roomType != "" {
		q = q.Where("type = ?", roomType)
	}

	var rooms []models.Room
	if err := q.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

// SetOccupied flips the occupancy flag directly. The booking engine keeps
// the flag in lock-step with the guest ledger inside its own transactions;
// this exists for catalog maintenance and returns NotFoundError for an
// unknown id.
func (s *RoomService) SetOccupied(id uint, occupied bool) error {
	result := s.DB.Model(&models.Room{}).
		Where("id = ?", id).
		Update("is_occupied", occupied)
	if result.Error != nil {
		return fmt.Errorf("failed to update room %d occupancy: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := s.DB.Model(&models.Room{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check room %d: %w", id, err)
		}
		if count == 0 {
			return &NotFoundError{Message: "Room not found"}
		}
		// zero rows affected because the flag already had that value
	}
	return nil
}

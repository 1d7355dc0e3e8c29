// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService เป็น wrapper รอบ *gorm.DB — owns the check-in/check-out
// state transitions and the billing at check-out.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CheckIn validates the request, then atomically creates the active guest
// record and flips the room to occupied. The SELECT ... FOR UPDATE on the
// room row is the serialization point per room: two concurrent check-ins on
// the same room cannot both pass the occupancy check, while check-ins on
// different rooms don't block each other.
func (s *BookingService) CheckIn(input CheckInInput) (models.Guest, error) {
	checkInDate, verr := validateCheckIn(&input)
	if verr != nil {
		return models.Guest{}, verr
	}

	guest := models.Guest{
		ID:           uuid.NewString(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Contact:      input.Contact,
		Email:        input.Email,
		RoomID:       uint(input.RoomID),
		CheckInDate:  checkInDate,
		NumberOfDays: input.NumberOfDays,
		Status:       models.GuestStatusActive,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "Room not found"}
			}
			return fmt.Errorf("failed to load room %d: %w", input.RoomID, err)
		}

		if room.IsOccupied {
			return &ConflictError{Message: "Room is already occupied"}
		}

		if err := tx.Create(&guest).Error; err != nil {
			return fmt.Errorf("failed to create guest: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", room.ID).
			Update("is_occupied", true).Error; err != nil {
			return fmt.Errorf("failed to mark room %d occupied: %w", room.ID, err)
		}

		return nil
	})
	if err != nil {
		return models.Guest{}, err
	}

	return guest, nil
}

// CheckOut closes the stay in room roomID: computes the bill, marks the
// guest checked-out with the total and breakdown snapshot, and frees the
// room. All three writes commit or roll back together, under the same
// room-row lock CheckIn takes.
func (s *BookingService) CheckOut(roomID uint) (models.BillDetails, error) {
	if roomID < 1 {
		return models.BillDetails{}, &ValidationError{Messages: []string{"Valid room ID is required"}}
	}

	var bill models.BillDetails

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "No active guest found in this room"}
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		var guest models.Guest
		if err := tx.
			Where("room_id = ? AND status = ?", roomID, models.GuestStatusActive).
			First(&guest).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: "No active guest found in this room"}
			}
			return fmt.Errorf("failed to load active guest for room %d: %w", roomID, err)
		}

		bill = ComputeBill(room, guest)

		snapshot, err := json.Marshal(bill)
		if err != nil {
			return fmt.Errorf("failed to encode bill for guest %s: %w", guest.ID, err)
		}

		if err := tx.Model(&models.Guest{}).
			Where("id = ?", guest.ID).
			Updates(map[string]interface{}{
				"status":     models.GuestStatusCheckedOut,
				"total_bill": bill.TotalBill,
				"bill":       datatypes.JSON(snapshot),
			}).Error; err != nil {
			return fmt.Errorf("failed to check out guest %s: %w", guest.ID, err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", roomID).
			Update("is_occupied", false).Error; err != nil {
			return fmt.Errorf("failed to free room %d: %w", roomID, err)
		}

		return nil
	})
	if err != nil {
		return models.BillDetails{}, err
	}

	return bill, nil
}

package services

import (
	"fmt"
	"math"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// Stats is the front-desk dashboard summary.
type Stats struct {
	TotalRooms     int64 `json:"totalRooms"`
	OccupiedRooms  int64 `json:"occupiedRooms"`
	AvailableRooms int64 `json:"availableRooms"`
	TotalGuests    int64 `json:"totalGuests"`
	OccupancyRate  int   `json:"occupancyRate"`
}

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// OccupancyRate is round(occupied/total*100), with 0 for an empty catalog.
func OccupancyRate(occupied, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

// Stats derives occupancy from the guest ledger rather than the room flags:
// one active guest per room, so the active-guest count is the occupied-room
// count. That way a stats read can never show an occupied room without its
// guest, even between two queries.
func (s *StatsService) Stats() (Stats, error) {
	var totalRooms int64
	if err := s.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count rooms: %w", err)
	}

	var activeGuests int64
	if err := s.DB.Model(&models.Guest{}).
		Where("status = ?", models.GuestStatusActive).
		Count(&activeGuests).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count active guests: %w", err)
	}

	return Stats{
		TotalRooms:     totalRooms,
		OccupiedRooms:  activeGuests,
		AvailableRooms: totalRooms - activeGuests,
		TotalGuests:    activeGuests,
		OccupancyRate:  OccupancyRate(activeGuests, totalRooms),
	}, nil
}

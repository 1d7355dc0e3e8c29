package models

// Room type values as stored in the rooms table.
const (
	RoomTypeStandard     = "standard"
	RoomTypeDeluxe       = "deluxe"
	RoomTypePremiumSuite = "premium-suite"
)

var roomTypeLabels = map[string]string{
	RoomTypeStandard:     "Standard",
	RoomTypeDeluxe:       "Deluxe",
	RoomTypePremiumSuite: "Premium Suite",
}

// Room is one entry of the fixed catalog seeded at startup.
// IsOccupied is the only field that ever changes after seeding.
type Room struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Type       string `gorm:"size:32;index" json:"type"`
	Price      int    `gorm:"not null" json:"price"`
	IsOccupied bool   `gorm:"not null;default:false" json:"isOccupied"`
}

// RoomTypeLabel returns the display name for a stored room type,
// or the stored value itself if it is unknown.
func RoomTypeLabel(roomType string) string {
	if label, ok := roomTypeLabels[roomType]; ok {
		return label
	}
	return roomType
}

// IsValidRoomType reports whether t is one of the seeded room types.
func IsValidRoomType(t string) bool {
	_, ok := roomTypeLabels[t]
	return ok
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Guest status values.
const (
	GuestStatusActive     = "active"
	GuestStatusCheckedOut = "checked-out"
)

// Guest is one ledger entry. A guest is created by check-in and mutated
// exactly once, at check-out (status + bill). Checked-out guests are kept
// as history, never deleted.
type Guest struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"size:255" json:"firstName"`
	LastName     string    `gorm:"size:255" json:"lastName"`
	Contact      string    `gorm:"size:64" json:"contact"`
	Email        string    `gorm:"size:255" json:"email"`
	RoomID       uint      `gorm:"index;column:room_id" json:"roomId"`
	CheckInDate  time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	NumberOfDays int       `gorm:"column:number_of_days" json:"numberOfDays"`
	Status       string    `gorm:"size:32;index;default:active" json:"status"`

	// TotalBill stays NULL while the guest is active and is set once at
	// check-out. Stored unrounded; rounding is presentation-only.
	TotalBill *float64 `gorm:"column:total_bill" json:"totalBill,omitempty"`

	// Bill is the full breakdown snapshot written at check-out so history
	// reads don't recompute from room prices.
	Bill datatypes.JSON `gorm:"column:bill" json:"bill,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BillDetails is the check-out bill summary returned to the caller and
// persisted as the Bill snapshot. GSTRate is a percentage (12), not a rate.
type BillDetails struct {
	GuestName    string    `json:"guestName"`
	RoomID       uint      `json:"roomId"`
	RoomType     string    `json:"roomType"`
	PricePerDay  int       `json:"pricePerDay"`
	NumberOfDays int       `json:"numberOfDays"`
	BaseAmount   float64   `json:"baseAmount"`
	GSTAmount    float64   `json:"gstAmount"`
	GSTRate      float64   `json:"gstRate"`
	TotalBill    float64   `json:"totalBill"`
	CheckInDate  time.Time `json:"checkInDate"`
}

// FullName joins first and last name for display and bills.
func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

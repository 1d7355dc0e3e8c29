package services

import "frontdesk-backend/models"

// GSTRate is the fixed surcharge applied to the base lodging amount.
const GSTRate = 0.12

// ComputeBill builds the check-out bill for a guest leaving a room:
// baseAmount = nightly price * number of days, plus 12% GST on top.
// Amounts are kept unrounded; rounding is left to presentation.
func ComputeBill(room models.Room, guest models.Guest) models.BillDetails {
	baseAmount := float64(room.Price * guest.NumberOfDays)
	gstAmount := baseAmount * GSTRate

	return models.BillDetails{
		GuestName:    guest.FullName(),
		RoomID:       room.ID,
		RoomType:     models.RoomTypeLabel(room.Type),
		PricePerDay:  room.Price,
		NumberOfDays: guest.NumberOfDays,
		BaseAmount:   baseAmount,
		GSTAmount:    gstAmount,
		GSTRate:      GSTRate * 100,
		TotalBill:    baseAmount + gstAmount,
		CheckInDate:  guest.CheckInDate,
	}
}

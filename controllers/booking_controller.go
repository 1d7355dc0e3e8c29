// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type CheckInRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	RoomID       int    `json:"roomId"`
	CheckInDate  string `json:"checkInDate"`
	NumberOfDays int    `json:"numberOfDays"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CheckIn handles POST /api/bookings. Field validation happens in the
// service so the response carries every violation at once; only a payload
// that doesn't decode at all is rejected here.
func (bc *BookingController) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	guest, err := bc.BookingSvc.CheckIn(services.CheckInInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Contact:      req.Contact,
		Email:        req.Email,
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		NumberOfDays: req.NumberOfDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Check-in successful",
		"guest":   guest,
	})
}

// CheckOut handles POST /api/checkout/:roomId.
func (bc *BookingController) CheckOut(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomId"))
	if err != nil || roomID < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	bill, err := bc.BookingSvc.CheckOut(uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Check-out successful",
		"billDetails": bill,
	})
}

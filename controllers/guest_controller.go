package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GetGuests handles GET /api/guests — active guests only.
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.GuestSvc.Active()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetAllGuests handles GET /api/guests/all — the full ledger including
// checked-out history.
func (gc *GuestController) GetAllGuests(c *gin.Context) {
	guests, err := gc.GuestSvc.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuestByRoom handles GET /api/rooms/:id/guest — the active guest of a
// room, 404 when the room is empty or unknown.
func (gc *GuestController) GetGuestByRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil || roomID < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	guest, err := gc.GuestSvc.ByRoom(uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

package controllers

import (
	"net/http"
	"strings"

	"frontdesk-backend/models"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// GetRooms handles GET /api/rooms — the full catalog ordered by id.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms handles GET /api/rooms/available?type=
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	roomType := strings.TrimSpace(c.Query("type"))
	if roomType != "" && !models.IsValidRoomType(roomType) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown room type")
		return
	}

	rooms, err := rc.RoomSvc.Available(roomType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

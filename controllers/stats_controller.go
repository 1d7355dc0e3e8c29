package controllers

import (
	"net/http"

	"frontdesk-backend/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

// GetStats handles GET /api/stats.
func (sc *StatsController) GetStats(c *gin.Context) {
	stats, err := sc.StatsSvc.Stats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

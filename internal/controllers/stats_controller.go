package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/services"
)

type StatsController struct {
	stats *services.StatsService
}

func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

func (sc *StatsController) GetForUser(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	stats, err := sc.stats.GetForUser(userID)
	if err != nil {
		respondError(c, "get user stats", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (sc *StatsController) RegisterCompletedTrip(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	var in services.CompletedTripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stats, err := sc.stats.RegisterCompletedTrip(userID, in)
	if err != nil {
		respondError(c, "register completed trip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stats updated", "stats": stats})
}

func (sc *StatsController) Dashboard(c *gin.Context) {
	dashboard, err := sc.stats.Dashboard()
	if err != nil {
		respondError(c, "dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

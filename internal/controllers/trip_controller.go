package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/services"
)

type TripController struct {
	trips *services.TripService
}

func NewTripController(trips *services.TripService) *TripController {
	return &TripController{trips: trips}
}

func (tc *TripController) Create(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	var in services.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := tc.trips.Create(userID, in)
	if err != nil {
		respondError(c, "create trip", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "trip created", "trip": trip})
}

func (tc *TripController) ListForUser(c *gin.Context) {
	userID, ok := paramID(c)
	if !ok {
		return
	}
	trips, err := tc.trips.ListForUser(userID, boolQuery(c, "completed_only", false))
	if err != nil {
		respondError(c, "list trips", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

func (tc *TripController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.TripPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trip, err := tc.trips.Update(id, patch)
	if err != nil {
		respondError(c, "update trip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip updated", "trip": trip})
}

func (tc *TripController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := tc.trips.Delete(id); err != nil {
		respondError(c, "delete trip", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip deleted", "id": id})
}

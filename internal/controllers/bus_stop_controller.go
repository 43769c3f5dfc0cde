package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/models"
	"transit_companion/internal/services"
)

type BusStopController struct {
	stops *services.BusStopService
}

func NewBusStopController(stops *services.BusStopService) *BusStopController {
	return &BusStopController{stops: stops}
}

func (sc *BusStopController) Create(c *gin.Context) {
	var in services.BusStopInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stop, err := sc.stops.Create(in)
	if err != nil {
		respondError(c, "create bus stop", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bus stop created", "bus_stop": stop})
}

func (sc *BusStopController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	stop, err := sc.stops.Get(id)
	if err != nil {
		respondError(c, "get bus stop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_stop": stop})
}

func (sc *BusStopController) List(c *gin.Context) {
	skip, limit := pagination(c)
	zone := models.Zone(c.Query("zone"))
	stops, err := sc.stops.List(zone, boolQuery(c, "active_only", true), skip, limit)
	if err != nil {
		respondError(c, "list bus stops", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_stops": stops})
}

// Nearby answers /search/bus-stops?lat=..&lng=..&radius_km=..
func (sc *BusStopController) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}
	radiusKm := 1.0
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "radius_km must be a positive number"})
			return
		}
		radiusKm = parsed
	}

	stops, err := sc.stops.Nearby(lat, lng, radiusKm)
	if err != nil {
		respondError(c, "nearby bus stops", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_stops": stops})
}

func (sc *BusStopController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.BusStopPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stop, err := sc.stops.Update(id, patch)
	if err != nil {
		respondError(c, "update bus stop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus stop updated", "bus_stop": stop})
}

func (sc *BusStopController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := sc.stops.Delete(id); err != nil {
		respondError(c, "delete bus stop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus stop deleted", "id": id})
}

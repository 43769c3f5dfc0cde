package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transit_companion/internal/models"
	"transit_companion/internal/services"
)

type BusController struct {
	buses *services.BusService
}

func NewBusController(buses *services.BusService) *BusController {
	return &BusController{buses: buses}
}

func (bc *BusController) Create(c *gin.Context) {
	var in services.BusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bus, err := bc.buses.Create(in)
	if err != nil {
		respondError(c, "create bus", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bus created", "bus": bus})
}

func (bc *BusController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	bus, err := bc.buses.Get(id)
	if err != nil {
		respondError(c, "get bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

func (bc *BusController) List(c *gin.Context) {
	skip, limit := pagination(c)
	zone := models.Zone(c.Query("zone"))
	buses, err := bc.buses.List(zone, boolQuery(c, "active_only", true), skip, limit)
	if err != nil {
		respondError(c, "list buses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"buses": buses})
}

func (bc *BusController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.BusPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bus, err := bc.buses.Update(id, patch)
	if err != nil {
		respondError(c, "update bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus updated", "bus": bus})
}

func (bc *BusController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := bc.buses.Delete(id); err != nil {
		respondError(c, "delete bus", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bus deleted", "id": id})
}

func (bc *BusController) AddSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.ScheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule, err := bc.buses.AddSchedule(id, in)
	if err != nil {
		respondError(c, "add schedule", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "schedule added", "schedule": schedule})
}

func (bc *BusController) UpdateSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.SchedulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule, err := bc.buses.UpdateSchedule(id, patch)
	if err != nil {
		respondError(c, "update schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule updated", "schedule": schedule})
}

func (bc *BusController) DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := bc.buses.DeleteSchedule(id); err != nil {
		respondError(c, "delete schedule", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "schedule deleted", "id": id})
}

// scheduleView adds the owning bus's transport name the way the
// timetable screens expect it.
type scheduleView struct {
	models.Schedule
	Transport string `json:"transport"`
}

func (bc *BusController) Departures(c *gin.Context) {
	bc.schedulesByZone(c, bc.buses.Departures)
}

func (bc *BusController) Arrivals(c *gin.Context) {
	bc.schedulesByZone(c, bc.buses.Arrivals)
}

func (bc *BusController) schedulesByZone(c *gin.Context, fetch func(models.Zone) ([]models.Schedule, error)) {
	schedules, err := fetch(models.Zone(c.Param("zone")))
	if err != nil {
		respondError(c, "list schedules", err)
		return
	}
	views := make([]scheduleView, 0, len(schedules))
	for _, schedule := range schedules {
		views = append(views, scheduleView{Schedule: schedule, Transport: schedule.Bus.TransportName})
	}
	c.JSON(http.StatusOK, gin.H{"schedules": views})
}

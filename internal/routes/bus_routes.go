package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func BusRoutes(r *gin.Engine, bc *controllers.BusController) {
	buses := r.Group("/buses")
	{
		buses.GET("", bc.List)
		buses.POST("", bc.Create)
		buses.GET("/:id", bc.Get)
		buses.PUT("/:id", bc.Update)
		buses.DELETE("/:id", bc.Delete)
		buses.POST("/:id/schedules", bc.AddSchedule)
	}

	schedules := r.Group("/schedules")
	{
		schedules.PUT("/:id", bc.UpdateSchedule)
		schedules.DELETE("/:id", bc.DeleteSchedule)
	}

	// Timetable screens query by zone: departures and arrivals of
	// active buses only.
	zones := r.Group("/zones")
	{
		zones.GET("/:zone/departures", bc.Departures)
		zones.GET("/:zone/arrivals", bc.Arrivals)
	}
}

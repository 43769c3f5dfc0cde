package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func BusStopRoutes(r *gin.Engine, sc *controllers.BusStopController) {
	stops := r.Group("/bus-stops")
	{
		stops.GET("", sc.List)
		stops.POST("", sc.Create)
		stops.GET("/:id", sc.Get)
		stops.PUT("/:id", sc.Update)
		stops.DELETE("/:id", sc.Delete)
	}

	r.GET("/search/bus-stops", sc.Nearby)
}

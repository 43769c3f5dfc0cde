package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func StatsRoutes(r *gin.Engine, sc *controllers.StatsController) {
	r.GET("/users/:id/stats", sc.GetForUser)
	r.POST("/users/:id/stats/trips", sc.RegisterCompletedTrip)
}

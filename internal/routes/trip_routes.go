package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func TripRoutes(r *gin.Engine, tc *controllers.TripController) {
	r.GET("/users/:id/trips", tc.ListForUser)
	r.POST("/users/:id/trips", tc.Create)
	r.PUT("/trips/:id", tc.Update)
	r.DELETE("/trips/:id", tc.Delete)
}

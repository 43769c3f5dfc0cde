package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func FavoriteRoutes(r *gin.Engine, fc *controllers.FavoriteController) {
	r.GET("/users/:id/favorites", fc.ListForUser)
	r.POST("/users/:id/favorites", fc.Create)
	r.DELETE("/favorites/:id", fc.Delete)
}

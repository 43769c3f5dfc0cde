package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func RouteRoutes(r *gin.Engine, rc *controllers.RouteController) {
	routes := r.Group("/routes")
	{
		routes.GET("", rc.List)
		routes.POST("", rc.Create)
		routes.GET("/:id", rc.Get)
		routes.PUT("/:id", rc.Update)
		routes.DELETE("/:id", rc.Delete)
	}

	r.GET("/search/routes/:term", rc.Search)
}

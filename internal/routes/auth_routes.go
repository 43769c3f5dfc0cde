package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func AuthRoutes(r *gin.Engine, uc *controllers.UserController) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", uc.Register)
		auth.POST("/login", uc.Login)
		auth.GET("/users", uc.List)
		auth.GET("/users/:id", uc.Get)
		auth.PUT("/users/:id", uc.Update)
		auth.PUT("/users/:id/password", uc.ChangePassword)
		auth.DELETE("/users/:id", uc.Deactivate)
	}
}

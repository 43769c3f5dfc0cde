package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

func NotificationRoutes(r *gin.Engine, nc *controllers.NotificationController) {
	r.GET("/users/:id/notifications", nc.ListForUser)

	notifications := r.Group("/notifications")
	{
		notifications.POST("", nc.Create)
		notifications.PUT("/:id/read", nc.MarkRead)
		notifications.DELETE("/:id", nc.Delete)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

// AdminRoutes serves the administration dashboard and the broadcast
// fan-out. Like every other endpoint these are unauthenticated for
// now; session validation is a known gap.
func AdminRoutes(r *gin.Engine, sc *controllers.StatsController, nc *controllers.NotificationController) {
	admin := r.Group("/admin")
	{
		admin.GET("/dashboard", sc.Dashboard)
		admin.POST("/broadcast", nc.Broadcast)
	}
}

package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"transit_companion/internal/controllers"
)

// Controllers bundles everything SetupRouter wires; main constructs it
// so nothing here reaches for globals.
type Controllers struct {
	Users         *controllers.UserController
	Routes        *controllers.RouteController
	Buses         *controllers.BusController
	BusStops      *controllers.BusStopController
	Favorites     *controllers.FavoriteController
	Trips         *controllers.TripController
	Stats         *controllers.StatsController
	Notifications *controllers.NotificationController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"service": "transit-companion", "status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	AuthRoutes(r, ctrl.Users)
	RouteRoutes(r, ctrl.Routes)
	BusRoutes(r, ctrl.Buses)
	BusStopRoutes(r, ctrl.BusStops)
	FavoriteRoutes(r, ctrl.Favorites)
	TripRoutes(r, ctrl.Trips)
	StatsRoutes(r, ctrl.Stats)
	NotificationRoutes(r, ctrl.Notifications)
	AdminRoutes(r, ctrl.Stats, ctrl.Notifications)

	return r
}

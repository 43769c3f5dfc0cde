package main

import (
	"log"
	"net/http"

	"transit_companion/internal/config"
	"transit_companion/internal/controllers"
	"transit_companion/internal/logger"
	"transit_companion/internal/middleware"
	"transit_companion/internal/routes"
	"transit_companion/internal/services"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	cfg := config.Load()

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	ctrl := routes.Controllers{
		Users:         controllers.NewUserController(services.NewUserService(db)),
		Routes:        controllers.NewRouteController(services.NewRouteService(db)),
		Buses:         controllers.NewBusController(services.NewBusService(db)),
		BusStops:      controllers.NewBusStopController(services.NewBusStopService(db)),
		Favorites:     controllers.NewFavoriteController(services.NewFavoriteService(db)),
		Trips:         controllers.NewTripController(services.NewTripService(db)),
		Stats:         controllers.NewStatsController(services.NewStatsService(db)),
		Notifications: controllers.NewNotificationController(services.NewNotificationService(db)),
	}

	r := routes.SetupRouter(ctrl)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}

package routes

import (
	"moodmap_server/controllers"
	"moodmap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMapRoutes sets up the map rendering routes under /api/map
func RegisterMapRoutes(r *mux.Router, moodService *services.MoodService, markerService *services.MarkerService) {
	controller := controllers.NewMapController(moodService, markerService)

	mapRouter := r.PathPrefix("/api/map").Subrouter()

	mapRouter.HandleFunc("/markers", controller.GetMarkers).Methods("GET")
}

package routes

import (
	"moodmap_server/controllers"
	"moodmap_server/services"

	"github.com/gorilla/mux"
)

// RegisterGeocodeRoutes sets up the geocoding proxy under /api/geocode
func RegisterGeocodeRoutes(r *mux.Router, geocodeService *services.GeocodeService) {
	controller := controllers.NewGeocodeController(geocodeService)

	geocodeRouter := r.PathPrefix("/api/geocode").Subrouter()

	geocodeRouter.HandleFunc("/reverse", controller.ReverseGeocode).Methods("POST")
	geocodeRouter.HandleFunc("/forward", controller.ForwardGeocode).Methods("POST")
}

package routes

import (
	"moodmap_server/controllers"
	"moodmap_server/services"

	"github.com/gorilla/mux"
)

// RegisterMoodRoutes sets up routes for mood operations under /api/moods
func RegisterMoodRoutes(r *mux.Router, moodService *services.MoodService, broadcaster controllers.MoodBroadcaster) {
	controller := controllers.NewMoodController(moodService, broadcaster)

	moodRouter := r.PathPrefix("/api/moods").Subrouter()

	moodRouter.HandleFunc("", controller.SubmitMood).Methods("POST")
	moodRouter.HandleFunc("", controller.GetMoods).Methods("GET")
	moodRouter.HandleFunc("/{userId}", controller.GetMoodByUserID).Methods("GET")
}

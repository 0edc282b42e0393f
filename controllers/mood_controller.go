package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"moodmap_server/models"
	"moodmap_server/services"

	"github.com/gorilla/mux"
)

// MoodBroadcaster nudges connected map clients after a submission
type MoodBroadcaster interface {
	BroadcastMoodUpdated(record models.MoodRecord)
}

// MoodController handles requests related to mood records
type MoodController struct {
	MoodService *services.MoodService
	Broadcaster MoodBroadcaster
}

// NewMoodController creates a new instance of MoodController
func NewMoodController(moodService *services.MoodService, broadcaster MoodBroadcaster) *MoodController {
	return &MoodController{MoodService: moodService, Broadcaster: broadcaster}
}

// SubmitMood handles sharing a mood; a repeat submission replaces the
// user's previous record.
func (c *MoodController) SubmitMood(w http.ResponseWriter, r *http.Request) {
	log.Println("SubmitMood called...")

	var sub models.MoodSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.Printf("Failed to decode request body: %v\n", err)
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	record, err := c.MoodService.SubmitMood(context.TODO(), sub)
	if err != nil {
		if errors.Is(err, services.ErrMissingUserID) ||
			errors.Is(err, services.ErrInvalidEmoji) ||
			errors.Is(err, services.ErrMissingCoordinates) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Failed to store mood: %v\n", err)
		http.Error(w, "Failed to store mood", http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil {
		c.Broadcaster.BroadcastMoodUpdated(*record)
	}

	log.Printf("Mood stored for user %s: %s\n", record.UserID, record.Emoji)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Mood added to the map",
		"mood":    record,
	})
}

// GetMoods returns every live mood, newest first
func (c *MoodController) GetMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := c.MoodService.GetAllMoods(context.TODO())
	if err != nil {
		log.Printf("Failed to fetch moods: %v\n", err)
		http.Error(w, "Failed to fetch moods", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"moods": moods,
		"count": len(moods),
	})
}

// GetMoodByUserID returns one user's live mood
func (c *MoodController) GetMoodByUserID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	record, err := c.MoodService.GetMoodByUserID(context.TODO(), userID)
	if err != nil {
		http.Error(w, "Failed to fetch mood", http.StatusInternalServerError)
		return
	}
	if record == nil {
		http.Error(w, "Mood not found", http.StatusNotFound)
		return
	}

	json.NewEncoder(w).Encode(record)
}

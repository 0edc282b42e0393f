package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"moodmap_server/services"
)

// MapController serves the grouped, render-ready view of the mood set
type MapController struct {
	MoodService   *services.MoodService
	MarkerService *services.MarkerService
}

func NewMapController(moodService *services.MoodService, markerService *services.MarkerService) *MapController {
	return &MapController{MoodService: moodService, MarkerService: markerService}
}

// GetMarkers recomputes groups and markers from the full current mood
// set. viewerId, when present, picks the representative emoji for
// groups the viewer belongs to.
func (c *MapController) GetMarkers(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("viewerId")

	moods, err := c.MoodService.GetAllMoods(context.TODO())
	if err != nil {
		log.Printf("Failed to fetch moods for map: %v\n", err)
		http.Error(w, "Failed to fetch moods", http.StatusInternalServerError)
		return
	}

	groups := services.GroupMoods(moods, viewerID)
	markers := c.MarkerService.BuildMarkers(context.TODO(), groups)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"groups":  groups,
		"markers": markers,
	})
}

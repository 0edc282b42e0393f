package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"moodmap_server/models"
	"moodmap_server/services"
)

// GeocodeController proxies the geocoding collaborator so the API key
// stays server-side. Failures come back as a notice in the body rather
// than an error status; the interface stays usable without labels.
type GeocodeController struct {
	GeocodeService *services.GeocodeService
}

func NewGeocodeController(geocodeService *services.GeocodeService) *GeocodeController {
	return &GeocodeController{GeocodeService: geocodeService}
}

// ReverseGeocode resolves coordinates to a place label
func (c *GeocodeController) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Lat == nil || body.Lng == nil {
		http.Error(w, "lat and lng are required", http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{"location": nil}
	label, err := c.GeocodeService.ResolveLabel(context.TODO(), models.Coordinates{Lat: *body.Lat, Lng: *body.Lng})
	if err != nil {
		log.Printf("Reverse geocode failed: %v\n", err)
		response["notice"] = "Location lookup failed"
	} else if label != "" {
		response["location"] = label
	}

	json.NewEncoder(w).Encode(response)
}

// ForwardGeocode resolves a place label to coordinates
func (c *GeocodeController) ForwardGeocode(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Location == "" {
		http.Error(w, "location is required", http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{"coordinates": nil}
	coords, err := c.GeocodeService.ResolveCoordinates(context.TODO(), body.Location)
	if err != nil {
		log.Printf("Forward geocode failed: %v\n", err)
		response["notice"] = "Location lookup failed"
	} else if coords != nil {
		response["coordinates"] = coords
	}

	json.NewEncoder(w).Encode(response)
}

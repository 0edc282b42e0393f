package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodmap_server/routes"
	"moodmap_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeocodeRouter(apiURL string) *mux.Router {
	gs := &services.GeocodeService{
		BaseURL:    apiURL,
		APIKey:     "test-key",
		Language:   "en",
		HTTPClient: http.DefaultClient,
		Cache:      services.NewGeocodeCache(),
	}
	r := mux.NewRouter()
	routes.RegisterGeocodeRoutes(r, gs)
	return r
}

func TestReverseGeocodeEndpoint(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{
				"components": map[string]string{"city": "Kadıköy", "state": "İstanbul", "country": "Türkiye"},
				"formatted":  "Kadıköy, İstanbul, Türkiye",
				"geometry":   map[string]float64{"lat": 40.99, "lng": 29.03},
			}},
		})
	}))
	defer api.Close()

	r := newGeocodeRouter(api.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/geocode/reverse", strings.NewReader(`{"lat":40.99,"lng":29.03}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Kadıköy, İstanbul, Türkiye", resp["location"])
}

func TestReverseGeocodeEndpointRequiresCoordinates(t *testing.T) {
	r := newGeocodeRouter("http://example.invalid")
	req := httptest.NewRequest(http.MethodPost, "/api/geocode/reverse", strings.NewReader(`{"lat":40.99}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReverseGeocodeEndpointSoftFailure(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer api.Close()

	r := newGeocodeRouter(api.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/geocode/reverse", strings.NewReader(`{"lat":1,"lng":2}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// failures come back as a notice, the interface stays usable
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Nil(t, resp["location"])
	assert.Equal(t, "Location lookup failed", resp["notice"])
}

func TestForwardGeocodeEndpoint(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]interface{}{{
				"geometry": map[string]float64{"lat": 59.91, "lng": 10.75},
			}},
		})
	}))
	defer api.Close()

	r := newGeocodeRouter(api.URL)
	req := httptest.NewRequest(http.MethodPost, "/api/geocode/forward", strings.NewReader(`{"location":"Oslo, Norway"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Coordinates *struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"coordinates"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotNil(t, resp.Coordinates)
	assert.Equal(t, 59.91, resp.Coordinates.Lat)
}

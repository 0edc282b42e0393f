package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"moodmap_server/config"
	"moodmap_server/models"
)

// ErrGeocodingDisabled is returned when no API key is configured.
// Callers treat it like any other soft failure: log, notify, move on.
var ErrGeocodingDisabled = errors.New("geocoding API key is not configured")

// GeocodeService resolves coordinates to human-readable labels and back
// through an OpenCage-style HTTP API, memoizing every definitive answer
// in a process-lifetime cache.
type GeocodeService struct {
	BaseURL    string
	APIKey     string
	Language   string
	HTTPClient *http.Client
	Cache      *GeocodeCache

	mu       sync.Mutex
	inflight map[string]chan struct{}
}

func NewGeocodeService(cfg *config.Config) *GeocodeService {
	return &GeocodeService{
		BaseURL:    cfg.GeocodeBaseURL,
		APIKey:     cfg.GeocodeAPIKey,
		Language:   cfg.GeocodeLanguage,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Cache:      NewGeocodeCache(),
		inflight:   make(map[string]chan struct{}),
	}
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	Components geocodeComponents `json:"components"`
	Formatted  string            `json:"formatted"`
	Geometry   struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"geometry"`
}

type geocodeComponents struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// coordinateKey rounds to 3 decimals (~100m) so nearby submissions from
// the same place share one cache entry.
func coordinateKey(coords models.Coordinates) string {
	return fmt.Sprintf("%.3f,%.3f", coords.Lat, coords.Lng)
}

// ResolveLabel resolves coordinates to a place label. A failed lookup
// returns "" with an error the caller surfaces as a transient notice;
// it never blocks the submission that asked for it. Only definitive
// answers (a label, or a confirmed empty result) are cached, so a
// network hiccup does not poison the cache.
func (gs *GeocodeService) ResolveLabel(ctx context.Context, coords models.Coordinates) (string, error) {
	key := coordinateKey(coords)
	if label, ok := gs.Cache.Label(key); ok {
		return label, nil
	}

	if gs.APIKey == "" {
		return "", ErrGeocodingDisabled
	}

	result, err := gs.query(ctx, fmt.Sprintf("%f,%f", coords.Lat, coords.Lng))
	if err != nil {
		return "", fmt.Errorf("reverse geocode failed: %w", err)
	}
	if result == nil {
		gs.Cache.StoreLabel(key, "")
		return "", fmt.Errorf("no geocoding result for %s", key)
	}

	label := composeLabel(result)
	gs.Cache.StoreLabel(key, label)
	return label, nil
}

// ResolveCoordinates resolves a label to coordinates for marker
// placement, nil when the provider knows no such place. Concurrent
// requests for the same uncached label collapse onto one external call:
// marker recomputation re-requests the same labels on every change.
func (gs *GeocodeService) ResolveCoordinates(ctx context.Context, label string) (*models.Coordinates, error) {
	for {
		if coords, ok := gs.Cache.Coordinates(label); ok {
			return coords, nil
		}

		gs.mu.Lock()
		if gs.inflight == nil {
			gs.inflight = make(map[string]chan struct{})
		}
		if ch, ok := gs.inflight[label]; ok {
			gs.mu.Unlock()
			select {
			case <-ch:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}
		ch := make(chan struct{})
		gs.inflight[label] = ch
		gs.mu.Unlock()

		coords, err := gs.lookupCoordinates(ctx, label)

		gs.mu.Lock()
		delete(gs.inflight, label)
		gs.mu.Unlock()
		close(ch)

		return coords, err
	}
}

func (gs *GeocodeService) lookupCoordinates(ctx context.Context, label string) (*models.Coordinates, error) {
	if gs.APIKey == "" {
		return nil, ErrGeocodingDisabled
	}

	result, err := gs.query(ctx, label)
	if err != nil {
		return nil, fmt.Errorf("forward geocode failed: %w", err)
	}
	if result == nil {
		gs.Cache.StoreCoordinates(label, nil)
		return nil, nil
	}

	coords := &models.Coordinates{Lat: result.Geometry.Lat, Lng: result.Geometry.Lng}
	gs.Cache.StoreCoordinates(label, coords)
	return coords, nil
}

// query issues a single best-match lookup. q is either "lat,lng" or a
// free-text label; the API treats both the same way.
func (gs *GeocodeService) query(ctx context.Context, q string) (*geocodeResult, error) {
	u, err := url.Parse(gs.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding base URL: %w", err)
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("key", gs.APIKey)
	params.Set("language", gs.Language)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := gs.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding API returned status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(decoded.Results) == 0 {
		return nil, nil
	}
	return &decoded.Results[0], nil
}

// composeLabel builds a label by descending specificity: city, town or
// village, then state, then country. Falls back to the provider's full
// formatted address when no structured component is present.
func composeLabel(result *geocodeResult) string {
	place := result.Components.City
	if place == "" {
		place = result.Components.Town
	}
	if place == "" {
		place = result.Components.Village
	}

	var parts []string
	for _, part := range []string{place, result.Components.State, result.Components.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return result.Formatted
	}
	return strings.Join(parts, ", ")
}

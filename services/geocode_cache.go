package services

import (
	"sync"

	"moodmap_server/models"
)

// GeocodeCache memoizes resolution results for the life of the process.
// A key that resolved to nothing is stored as well (empty label / nil
// coordinates) so the external API is consulted at most once per key.
// There is no eviction: the key space is the set of distinct places
// users post from, which stays small.
type GeocodeCache struct {
	mu     sync.Mutex
	labels map[string]string
	coords map[string]*models.Coordinates
}

func NewGeocodeCache() *GeocodeCache {
	return &GeocodeCache{
		labels: make(map[string]string),
		coords: make(map[string]*models.Coordinates),
	}
}

// Label returns the cached label for a rounded coordinate key.
// ok is true when a lookup was attempted before, even if it found nothing.
func (c *GeocodeCache) Label(key string) (label string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	label, ok = c.labels[key]
	return label, ok
}

func (c *GeocodeCache) StoreLabel(key, label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels[key] = label
}

// Coordinates returns the cached coordinates for a label.
// A nil value with ok=true means a lookup was attempted and found nothing.
func (c *GeocodeCache) Coordinates(label string) (coords *models.Coordinates, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	coords, ok = c.coords[label]
	return coords, ok
}

func (c *GeocodeCache) StoreCoordinates(label string, coords *models.Coordinates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.coords[label] = coords
}

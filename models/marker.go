package models

// Marker is everything the map layer needs to render one mood group:
// position, divIcon markup and the expanded popup content.
type Marker struct {
	Position   Coordinates `json:"position"`
	IconHTML   string      `json:"iconHtml"`
	IconSize   [2]int      `json:"iconSize"`
	IconAnchor [2]int      `json:"iconAnchor"`
	Popup      Popup       `json:"popup"`
}

// Popup is the expanded detail view behind a marker
type Popup struct {
	LocationLabel string       `json:"location"`
	Count         int          `json:"count"`
	Entries       []PopupEntry `json:"entries"`
}

// PopupEntry is one member row inside a popup, in group order
type PopupEntry struct {
	Emoji       string `json:"emoji"`
	Status      string `json:"status,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

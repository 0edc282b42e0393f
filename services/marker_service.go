package services

import (
	"context"
	"fmt"
	"log"

	"moodmap_server/models"
)

// CoordinateResolver places a group on the map by its label
type CoordinateResolver interface {
	ResolveCoordinates(ctx context.Context, label string) (*models.Coordinates, error)
}

// MarkerService turns mood groups into map markers: a big emoji glyph
// for single-member groups, an emoji with a numeric count badge for
// multi-member groups, and the member list as popup content.
type MarkerService struct {
	Resolver CoordinateResolver
}

// BuildMarkers builds one marker per group whose label has resolved
// coordinates. Groups with an unresolved label are skipped for now and
// appear once a later recompute finds their coordinates cached.
func (ms *MarkerService) BuildMarkers(ctx context.Context, groups []models.MoodGroup) []models.Marker {
	var markers []models.Marker
	for _, group := range groups {
		coords, err := ms.Resolver.ResolveCoordinates(ctx, group.LocationLabel)
		if err != nil {
			log.Printf("Skipping marker for %q: %v", group.LocationLabel, err)
			continue
		}
		if coords == nil {
			continue
		}

		marker := models.Marker{
			Position: *coords,
			IconHTML: iconHTML(group.RepresentativeEmoji, group.Count),
			Popup:    buildPopup(group),
		}
		if group.Count == 1 {
			marker.IconSize = [2]int{48, 48}
			marker.IconAnchor = [2]int{24, 48}
		} else {
			marker.IconSize = [2]int{80, 80}
			marker.IconAnchor = [2]int{40, 70}
		}
		markers = append(markers, marker)
	}
	return markers
}

func iconHTML(emoji string, count int) string {
	if count == 1 {
		return fmt.Sprintf(`<div style="font-size: 48px; filter: drop-shadow(0 0 12px black);">%s</div>`, emoji)
	}
	return fmt.Sprintf(
		`<div style="position: relative;">`+
			`<div style="font-size: 48px; filter: drop-shadow(0 0 12px black);">%s</div>`+
			`<div style="position: absolute; top: -16px; right: -20px; background:#a855f7; color:white; font-weight:bold; font-size:20px; width:40px; height:40px; border-radius:50%%; display:flex; align-items:center; justify-content:center; border:4px solid black; box-shadow: 0 0 20px #a855f7;">%d</div>`+
			`</div>`,
		emoji, count)
}

func buildPopup(group models.MoodGroup) models.Popup {
	entries := make([]models.PopupEntry, 0, len(group.Members))
	for _, member := range group.Members {
		entries = append(entries, models.PopupEntry{
			Emoji:       member.Emoji,
			Status:      member.Status,
			DisplayName: member.DisplayName,
			CreatedAt:   member.CreatedAt,
		})
	}
	return models.Popup{
		LocationLabel: group.LocationLabel,
		Count:         group.Count,
		Entries:       entries,
	}
}

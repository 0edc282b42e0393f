package services

import (
	"moodmap_server/models"
)

// GroupMoods partitions the loaded moods by exact location label.
// Records without a label produce no group. Group order is first
// appearance in fetch order (newest first), member order is preserved.
// The representative emoji is the viewer's own if the viewer has a
// record in the group, otherwise the first member's.
func GroupMoods(moods []models.MoodRecord, viewerID string) []models.MoodGroup {
	var order []string
	buckets := make(map[string][]models.MoodRecord)

	for _, mood := range moods {
		if mood.LocationLabel == "" {
			continue
		}
		if _, seen := buckets[mood.LocationLabel]; !seen {
			order = append(order, mood.LocationLabel)
		}
		buckets[mood.LocationLabel] = append(buckets[mood.LocationLabel], mood)
	}

	groups := make([]models.MoodGroup, 0, len(order))
	for _, label := range order {
		members := buckets[label]
		representative := members[0].Emoji
		if viewerID != "" {
			for _, member := range members {
				if member.UserID == viewerID {
					representative = member.Emoji
					break
				}
			}
		}
		groups = append(groups, models.MoodGroup{
			LocationLabel:       label,
			Members:             members,
			RepresentativeEmoji: representative,
			Count:               len(members),
		})
	}
	return groups
}

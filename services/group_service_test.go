package services

import (
	"testing"

	"moodmap_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mood(userID, emoji, label string) models.MoodRecord {
	return models.MoodRecord{
		ID:            "id-" + userID,
		UserID:        userID,
		Emoji:         emoji,
		LocationLabel: label,
	}
}

func TestGroupMoodsPartitionsByExactLabel(t *testing.T) {
	moods := []models.MoodRecord{
		mood("1", "😎", "Kadıköy, İstanbul"),
		mood("2", "😢", "Kadıköy, İstanbul"),
		mood("3", "🥳", "Oslo, Norway"),
	}

	groups := GroupMoods(moods, "")
	require.Len(t, groups, 2)

	// every labelled record lands in exactly one group
	total := 0
	seen := map[string]bool{}
	for _, g := range groups {
		total += g.Count
		for _, m := range g.Members {
			assert.False(t, seen[m.UserID], "record %s appears twice", m.UserID)
			seen[m.UserID] = true
			assert.Equal(t, g.LocationLabel, m.LocationLabel)
		}
	}
	assert.Equal(t, len(moods), total)
}

func TestGroupMoodsSkipsUnlabelledRecords(t *testing.T) {
	// A and B share a label, C has none: one group of two, no marker for C
	moods := []models.MoodRecord{
		mood("a", "😎", "Kadıköy, İstanbul"),
		mood("b", "😢", "Kadıköy, İstanbul"),
		mood("c", "🥳", ""),
	}

	groups := GroupMoods(moods, "")
	require.Len(t, groups, 1)
	assert.Equal(t, "Kadıköy, İstanbul", groups[0].LocationLabel)
	assert.Equal(t, 2, groups[0].Count)
}

func TestGroupMoodsRepresentativeEmojiFavorsViewer(t *testing.T) {
	moods := []models.MoodRecord{
		mood("1", "😎", "Kadıköy, İstanbul"),
		mood("2", "😢", "Kadıköy, İstanbul"),
		mood("42", "🥶", "Kadıköy, İstanbul"),
	}

	// viewer last in member order still wins
	groups := GroupMoods(moods, "42")
	require.Len(t, groups, 1)
	assert.Equal(t, "🥶", groups[0].RepresentativeEmoji)

	// without the viewer in the group, the first member's emoji is shown
	groups = GroupMoods(moods, "99")
	assert.Equal(t, "😎", groups[0].RepresentativeEmoji)
}

func TestGroupMoodsPreservesFetchOrder(t *testing.T) {
	moods := []models.MoodRecord{
		mood("1", "😎", "Oslo, Norway"),
		mood("2", "😢", "Kadıköy, İstanbul"),
		mood("3", "🥳", "Oslo, Norway"),
	}

	groups := GroupMoods(moods, "")
	require.Len(t, groups, 2)
	assert.Equal(t, "Oslo, Norway", groups[0].LocationLabel, "group order is first appearance")
	assert.Equal(t, "1", groups[0].Members[0].UserID)
	assert.Equal(t, "3", groups[0].Members[1].UserID)
}

func TestGroupMoodsCountMatchesMembers(t *testing.T) {
	moods := []models.MoodRecord{
		mood("1", "😎", "Oslo, Norway"),
		mood("2", "😢", "Oslo, Norway"),
		mood("3", "🥳", "Oslo, Norway"),
	}

	groups := GroupMoods(moods, "")
	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].Count)
	assert.Len(t, groups[0].Members, 3)
}

func TestGroupMoodsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupMoods(nil, "42"))
}

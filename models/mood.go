package models

// MoodRecord is a user's current emoji/status/location snapshot.
// The moods table uses userId as its partition key, so writing a
// record replaces the user's previous mood (at most one live record
// per user).
type MoodRecord struct {
	ID            string  `dynamodbav:"id" json:"id"`
	UserID        string  `dynamodbav:"userId" json:"userId"`
	DisplayName   string  `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Emoji         string  `dynamodbav:"emoji" json:"emoji"`
	Status        string  `dynamodbav:"status,omitempty" json:"status,omitempty"`
	Lat           float64 `dynamodbav:"lat" json:"lat"`
	Lng           float64 `dynamodbav:"lng" json:"lng"`
	LocationLabel string  `dynamodbav:"location,omitempty" json:"location,omitempty"`
	CreatedAt     string  `dynamodbav:"createdAt" json:"createdAt"`
}

// MoodsTable is the DynamoDB table name for mood records
const MoodsTable = "Moods"

// MoodSubmission is the payload a client sends to share a mood.
// Lat/Lng are pointers so missing coordinates can be told apart from 0,0.
type MoodSubmission struct {
	UserID      string   `json:"userId"`
	DisplayName string   `json:"displayName"`
	Emoji       string   `json:"emoji"`
	Status      string   `json:"status"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// Coordinates is a raw latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MoodGroup is one map bucket: all currently loaded moods sharing a
// location label. Groups are recomputed on every data change and never
// persisted.
type MoodGroup struct {
	LocationLabel       string       `json:"location"`
	Members             []MoodRecord `json:"members"`
	RepresentativeEmoji string       `json:"representativeEmoji"`
	Count               int          `json:"count"`
}

// Viewer identifies the user driving a session
type Viewer struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

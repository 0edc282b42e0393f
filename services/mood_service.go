package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"moodmap_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var (
	ErrMissingUserID      = errors.New("userId is required")
	ErrInvalidEmoji       = errors.New("emoji is not in the allowed set")
	ErrMissingCoordinates = errors.New("coordinates are required")
)

// MoodStore is the slice of the DynamoDB wrapper the mood flows need
type MoodStore interface {
	PutItem(ctx context.Context, tableName string, item interface{}) error
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)
	ScanItems(ctx context.Context, tableName string, result interface{}) error
}

// LabelResolver reverse-geocodes a submission's coordinates
type LabelResolver interface {
	ResolveLabel(ctx context.Context, coords models.Coordinates) (string, error)
}

type MoodService struct {
	Dynamo  MoodStore
	Geocode LabelResolver
	Table   string
}

// SubmitMood validates and stores a mood, replacing the user's previous
// one. The location label is best effort: a failed reverse geocode is
// logged and the record is stored without a label.
func (ms *MoodService) SubmitMood(ctx context.Context, sub models.MoodSubmission) (*models.MoodRecord, error) {
	if sub.UserID == "" {
		return nil, ErrMissingUserID
	}
	if !models.IsAllowedEmoji(sub.Emoji) {
		return nil, ErrInvalidEmoji
	}
	if sub.Lat == nil || sub.Lng == nil {
		return nil, ErrMissingCoordinates
	}

	record := models.MoodRecord{
		ID:          uuid.NewString(),
		UserID:      sub.UserID,
		DisplayName: sub.DisplayName,
		Emoji:       sub.Emoji,
		Status:      models.TruncateStatus(sub.Status),
		Lat:         *sub.Lat,
		Lng:         *sub.Lng,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if ms.Geocode != nil {
		label, err := ms.Geocode.ResolveLabel(ctx, models.Coordinates{Lat: record.Lat, Lng: record.Lng})
		if err != nil {
			log.Printf("Reverse geocode failed for user %s: %v", sub.UserID, err)
		}
		record.LocationLabel = label
	}

	if err := ms.Dynamo.PutItem(ctx, ms.Table, record); err != nil {
		return nil, fmt.Errorf("failed to store mood: %w", err)
	}
	return &record, nil
}

// GetAllMoods returns every live mood, newest first. The grouping and
// marker layers depend on this order.
func (ms *MoodService) GetAllMoods(ctx context.Context) ([]models.MoodRecord, error) {
	var moods []models.MoodRecord
	if err := ms.Dynamo.ScanItems(ctx, ms.Table, &moods); err != nil {
		return nil, fmt.Errorf("failed to fetch moods: %w", err)
	}

	// createdAt is RFC3339 UTC, so string order is time order
	sort.Slice(moods, func(i, j int) bool {
		return moods[i].CreatedAt > moods[j].CreatedAt
	})
	return moods, nil
}

// GetMoodByUserID returns the user's live mood, nil when absent
func (ms *MoodService) GetMoodByUserID(ctx context.Context, userID string) (*models.MoodRecord, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ms.Dynamo.GetItem(ctx, ms.Table, key)
	if err != nil {
		return nil, err
	}
	if len(item) == 0 {
		return nil, nil
	}

	var record models.MoodRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mood: %w", err)
	}
	return &record, nil
}

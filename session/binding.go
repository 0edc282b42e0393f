// Package session drives the lifecycle of one map page instance: host
// environment confirmation, identity resolution, geolocation, the mood
// set and its derived groups and markers.
package session

import (
	"context"
	"errors"
	"log"
	"time"

	"moodmap_server/models"
	"moodmap_server/services"
)

var (
	// ErrNoHostEnvironment means the app is not running inside its
	// intended host; the embedding client decides where to redirect.
	ErrNoHostEnvironment = errors.New("host environment is not available")
	ErrNoIdentity        = errors.New("user identity could not be resolved")
	ErrLocationDenied    = errors.New("location permission was denied")
	ErrNotReady          = errors.New("session is not ready")
	ErrNoMood            = errors.New("viewer has no mood to share")
)

type State int

const (
	StateAwaitingEnvironment State = iota
	StateAwaitingIdentity
	StateReady
)

func (s State) String() string {
	switch s {
	case StateAwaitingEnvironment:
		return "awaiting-environment"
	case StateAwaitingIdentity:
		return "awaiting-identity"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// HostEnvironment is the social-client runtime embedding the app
type HostEnvironment interface {
	// WaitReady blocks until the host signals readiness or ctx expires
	WaitReady(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Viewer, error)
	ShareContent(ctx context.Context, text string) error
}

// Geolocator is the one-shot device position request
type Geolocator interface {
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
}

// MapViewport receives focus commands; it emits nothing back
type MapViewport interface {
	FocusOn(coords models.Coordinates)
}

// MoodClient is the mood backend as seen from a session
type MoodClient interface {
	SubmitMood(ctx context.Context, sub models.MoodSubmission) (*models.MoodRecord, error)
	GetAllMoods(ctx context.Context) ([]models.MoodRecord, error)
	GetMoodByUserID(ctx context.Context, userID string) (*models.MoodRecord, error)
}

const defaultReadyTimeout = 10 * time.Second

// Binding wires the collaborators of one page instance together and
// walks the awaiting-environment -> awaiting-identity -> ready states.
// All mutation happens through its methods; a denied geolocation blocks
// submission but never the map itself.
type Binding struct {
	Host         HostEnvironment
	Geolocator   Geolocator
	Viewport     MapViewport
	Moods        MoodClient
	Renderer     *services.MarkerService
	ReadyTimeout time.Duration

	state          State
	viewer         *models.Viewer
	position       *models.Coordinates
	locationDenied bool
	overlayOpen    bool
	moods          []models.MoodRecord
	closed         bool
}

// Start confirms the host environment under the configured timeout,
// resolves the viewer identity and enters the ready state: one-shot
// geolocation, initial fetch, and the submission overlay opens when the
// viewer has no mood yet.
func (b *Binding) Start(ctx context.Context) error {
	timeout := b.ReadyTimeout
	if timeout <= 0 {
		timeout = defaultReadyTimeout
	}

	readyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := b.Host.WaitReady(readyCtx); err != nil {
		log.Printf("Host environment not confirmed: %v", err)
		return ErrNoHostEnvironment
	}
	b.state = StateAwaitingIdentity

	viewer, err := b.Host.CurrentUser(ctx)
	if err != nil || viewer == nil {
		log.Printf("Identity resolution failed: %v", err)
		return ErrNoIdentity
	}
	b.viewer = viewer
	b.state = StateReady

	if pos, err := b.Geolocator.CurrentPosition(ctx); err != nil {
		log.Printf("Geolocation denied for user %s: %v", viewer.UserID, err)
		b.locationDenied = true
	} else {
		b.position = &pos
	}

	if err := b.Refresh(ctx); err != nil {
		log.Printf("Initial mood fetch failed: %v", err)
	}

	if b.viewerRecord() == nil {
		b.overlayOpen = true
	}
	return nil
}

// Refresh replaces the whole in-memory mood set with a fresh fetch
func (b *Binding) Refresh(ctx context.Context) error {
	if b.state != StateReady {
		return ErrNotReady
	}

	moods, err := b.Moods.GetAllMoods(ctx)
	if err != nil {
		return err
	}
	if b.closed {
		// late result after teardown, drop it
		return nil
	}
	b.moods = moods
	return nil
}

// Submit shares the viewer's mood at the captured position and
// re-fetches on success. Blocked while location permission is denied.
func (b *Binding) Submit(ctx context.Context, emoji, status string) (*models.MoodRecord, error) {
	if b.state != StateReady {
		return nil, ErrNotReady
	}
	if b.locationDenied || b.position == nil {
		return nil, ErrLocationDenied
	}

	sub := models.MoodSubmission{
		UserID:      b.viewer.UserID,
		DisplayName: b.viewer.DisplayName,
		Emoji:       emoji,
		Status:      status,
		Lat:         &b.position.Lat,
		Lng:         &b.position.Lng,
	}
	record, err := b.Moods.SubmitMood(ctx, sub)
	if err != nil {
		return nil, err
	}

	b.overlayOpen = false
	if err := b.Refresh(ctx); err != nil {
		log.Printf("Re-fetch after submission failed: %v", err)
	}
	return record, nil
}

// FocusViewport re-fetches and centers the map on the viewer's group
func (b *Binding) FocusViewport(ctx context.Context) error {
	if err := b.Refresh(ctx); err != nil {
		return err
	}

	record := b.viewerRecord()
	if record == nil || record.LocationLabel == "" {
		return nil
	}

	coords, err := b.Renderer.Resolver.ResolveCoordinates(ctx, record.LocationLabel)
	if err != nil || coords == nil {
		return err
	}
	if b.Viewport != nil {
		b.Viewport.FocusOn(*coords)
	}
	return nil
}

// Share hands the viewer's current mood to the host's share action
func (b *Binding) Share(ctx context.Context) error {
	if b.state != StateReady {
		return ErrNotReady
	}
	record := b.viewerRecord()
	if record == nil {
		return ErrNoMood
	}

	text := "My mood on MoodMap: " + record.Emoji
	if record.Status != "" {
		text += " " + record.Status
	}
	return b.Host.ShareContent(ctx, text)
}

// Groups recomputes the display groups from the current mood set
func (b *Binding) Groups() []models.MoodGroup {
	return services.GroupMoods(b.moods, b.viewerID())
}

// Markers recomputes the map markers from the current mood set
func (b *Binding) Markers(ctx context.Context) []models.Marker {
	return b.Renderer.BuildMarkers(ctx, b.Groups())
}

// Close tears the binding down. In-flight calls are not cancelled;
// their late results are dropped.
func (b *Binding) Close() {
	b.closed = true
}

func (b *Binding) State() State { return b.state }

func (b *Binding) Viewer() *models.Viewer { return b.viewer }

func (b *Binding) LocationDenied() bool { return b.locationDenied }

func (b *Binding) OverlayOpen() bool { return b.overlayOpen }

// Records returns the current in-memory mood set
func (b *Binding) Records() []models.MoodRecord { return b.moods }

func (b *Binding) viewerID() string {
	if b.viewer == nil {
		return ""
	}
	return b.viewer.UserID
}

func (b *Binding) viewerRecord() *models.MoodRecord {
	id := b.viewerID()
	if id == "" {
		return nil
	}
	for i := range b.moods {
		if b.moods[i].UserID == id {
			return &b.moods[i]
		}
	}
	return nil
}

// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"strings"

	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/tags"
)

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// nowPlayingTimeout is how long a "now playing" notification stays, in ms.
const nowPlayingTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// NowPlaying builds the notification announcing song. It replaces the
// notification with id replaces, so consecutive songs share one bubble.
func NowPlaying(song playlist.Song, replaces uint32) Notification {
	var body []string
	if song.Artist != "" {
		body = append(body, song.Artist)
	}
	if song.Album != "" {
		body = append(body, song.Album)
	}
	icon := tags.FolderArt(song.Path)
	if icon == "" {
		icon = "audio-x-generic"
	}
	return Notification{
		Title:      song.Title,
		Body:       strings.Join(body, " - "),
		Icon:       icon,
		Timeout:    nowPlayingTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

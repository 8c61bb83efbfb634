//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/fader/internal/playlist"
)

func sessionNotifier(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}
	n, err := New()
	require.NoError(t, err)
	require.NotNil(t, n)
	return n
}

func TestNowPlayingReplacesBubble(t *testing.T) {
	n := sessionNotifier(t)

	first, err := n.Notify(NowPlaying(playlist.Song{Title: "First", Artist: "Band"}, 0))
	require.NoError(t, err)
	if first == 0 {
		t.Skip("notification server returned no id")
	}

	second, err := n.Notify(NowPlaying(playlist.Song{Title: "Second", Artist: "Band"}, first))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NoError(t, n.Close(second))
}

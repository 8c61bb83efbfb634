//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/fader/internal/tags"
)

const (
	busName  = "fader"
	identity = "Fader"
)

// Adapter serves the MPRIS interfaces for the player.
type Adapter struct {
	state  *state
	server *server.Server
	logger *zerolog.Logger
}

// New creates an adapter. It is not on the bus until Listen.
func New(logger *zerolog.Logger) *Adapter {
	if logger == nil {
		logger = &log.Logger
	}
	st := &state{}
	return &Adapter{
		state:  st,
		server: server.NewServer(busName, &rootAdapter{}, &playerAdapter{state: st}),
		logger: logger,
	}
}

// Listen registers on the session bus in the background and forwards
// remote commands to send.
func (a *Adapter) Listen(send Sender) {
	a.state.setSender(send)
	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn().Err(err).Msg("mpris unavailable")
		}
	}()
}

// Publish replaces the status shown to remote clients.
func (a *Adapter) Publish(st Status) {
	a.state.publish(st)
}

// Close leaves the bus.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error           { return nil }
func (r *rootAdapter) Quit() error            { return nil }
func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }
func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return identity, nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/x-wav", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter with the
// loop status and shuffle extensions.
type playerAdapter struct {
	state *state
}

func (p *playerAdapter) send(c Command) error {
	p.state.dispatch(Request{Command: c})
	return nil
}

func (p *playerAdapter) Next() error      { return p.send(CommandNext) }
func (p *playerAdapter) Previous() error  { return p.send(CommandPrevious) }
func (p *playerAdapter) Pause() error     { return p.send(CommandPause) }
func (p *playerAdapter) PlayPause() error { return p.send(CommandPlayPause) }
func (p *playerAdapter) Play() error      { return p.send(CommandPlay) }

// Stop pauses; songs always stay loaded.
func (p *playerAdapter) Stop() error { return p.send(CommandPause) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	p.state.dispatch(Request{Command: CommandSeek, Offset: time.Duration(offset) * time.Microsecond})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	p.state.dispatch(Request{Command: CommandSetPosition, Position: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.state.snapshot()
	switch {
	case !st.Loaded:
		return types.PlaybackStatusStopped, nil
	case st.Playing:
		return types.PlaybackStatusPlaying, nil
	default:
		return types.PlaybackStatusPaused, nil
	}
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.state.snapshot()
	if !st.Loaded {
		return types.Metadata{}, nil
	}
	song := st.Song

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(trackID(song.Path)),
		Length:  types.Microseconds(song.Duration.Microseconds()),
		Title:   song.Title,
		Artist:  []string{song.Artist},
		Album:   song.Album,
	}
	if art := tags.FolderArt(song.Path); art != "" {
		meta.ArtUrl = "file://" + art
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetVolume(_ float64) error { return nil }

func (p *playerAdapter) Position() (int64, error) {
	return p.state.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) CanGoNext() (bool, error) {
	st := p.state.snapshot()
	return st.Loaded && st.Count > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.state.snapshot().Loaded, nil
}

func (p *playerAdapter) CanPlay() (bool, error)    { return p.state.snapshot().Loaded, nil }
func (p *playerAdapter) CanPause() (bool, error)   { return true, nil }
func (p *playerAdapter) CanSeek() (bool, error)    { return p.state.snapshot().Loaded, nil }
func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Repeat replays the current song; the playlist always wraps around.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.state.snapshot().Repeat {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusPlaylist, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	p.state.dispatch(Request{Command: CommandSetRepeat, Flag: status == types.LoopStatusTrack})
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.state.snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	p.state.dispatch(Request{Command: CommandSetShuffle, Flag: shuffle})
	return nil
}

func trackID(path string) string {
	h := fnv.New64a()
	h.Write([]byte(path))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/mpris"
	"github.com/llehouerou/fader/internal/notify"
	"github.com/llehouerou/fader/internal/playlist"
)

// Publisher receives the player status after every change.
type Publisher interface {
	Publish(mpris.Status)
}

// RemoteMsg carries a command from a media key or desktop widget.
type RemoteMsg mpris.Request

// NotifiedMsg carries the id of the "now playing" notification.
type NotifiedMsg struct {
	ID  uint32
	Err error
}

// notifyCmd announces song off the Update goroutine.
func notifyCmd(n notify.Notifier, song playlist.Song, replaces uint32) tea.Cmd {
	return func() tea.Msg {
		id, err := n.Notify(notify.NowPlaying(song, replaces))
		return NotifiedMsg{ID: id, Err: err}
	}
}

// handleRemote applies a desktop media command. Commands are dropped until
// the player has been started from the import screen.
func (m Model) handleRemote(r mpris.Request) (tea.Model, tea.Cmd) {
	if !m.Started {
		return m, nil
	}
	ctrl := m.Controller
	switch r.Command {
	case mpris.CommandPlayPause:
		ctrl.TogglePlayPause()
	case mpris.CommandPlay:
		if !ctrl.State().Playing {
			ctrl.TogglePlayPause()
		}
	case mpris.CommandPause:
		if ctrl.State().Playing {
			ctrl.TogglePlayPause()
		}
	case mpris.CommandNext:
		ctrl.Next()
	case mpris.CommandPrevious:
		ctrl.Previous()
	case mpris.CommandSeek:
		ctrl.Seek(r.Offset)
	case mpris.CommandSetPosition:
		if d := m.Screen.progress.Duration; d > 0 {
			ctrl.OnSeekRequest(float64(r.Position) / float64(d))
		}
	case mpris.CommandSetShuffle:
		if ctrl.State().Shuffle != r.Flag {
			ctrl.ToggleShuffle()
		}
	case mpris.CommandSetRepeat:
		if ctrl.State().Repeat != r.Flag {
			ctrl.ToggleRepeat()
		}
	}
	return m.afterController()
}

func (m Model) handleNotified(msg NotifiedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Logger.Warn().Msg(errmsg.Format(errmsg.OpNotify, msg.Err))
		return m, nil
	}
	m.notifyID = msg.ID
	return m, nil
}

// publish pushes the player status to the remote and returns the command
// announcing a song change, if any.
func (m *Model) publish() tea.Cmd {
	song, _, shown := m.Screen.Song()
	loaded := shown && m.Controller.Phase().IsLoaded()

	if m.Opts.Remote != nil {
		st := m.Controller.State()
		m.Opts.Remote.Publish(mpris.Status{
			Loaded:   loaded,
			Playing:  st.Playing,
			Shuffle:  st.Shuffle,
			Repeat:   st.Repeat,
			Count:    len(m.Controller.Songs()),
			Song:     song,
			Position: m.Screen.progress.Position,
		})
	}

	if m.Opts.Notifier == nil || !loaded || !m.Controller.State().Playing || song.URL == m.notifiedURL {
		return nil
	}
	m.notifiedURL = song.URL
	return notifyCmd(m.Opts.Notifier, song, m.notifyID)
}

package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/mpris"
	"github.com/llehouerou/fader/internal/ui/playerbar"
)

const (
	seekStep        = 5 * time.Second
	noSongsFeedback = "Please import some music files first"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Help.Width = max(msg.Width-2*hPad, 0)
		m.PathInput.Width = max(min(importDialogWidth, msg.Width-4)-lipgloss.Width(m.PathInput.Prompt)-1, 1)
		m.resizePlaylist()
		return m, nil

	case TickMsg:
		m.Controller.Tick()
		m.Screen.expireError()
		announce := m.publish()
		return m, tea.Batch(TickCmd(), announce)

	case TaskFiredMsg:
		m.Loop.Run(msg.Task)
		return m.afterController(WatchScheduler(m.Loop))

	case TrackEndMsg:
		m.Controller.OnTrackEnd()
		return m.afterController(WatchTrackEnd(m.Controller.Finished()))

	case ImportDoneMsg:
		return m.handleImportDone(msg)

	case RemoteMsg:
		return m.handleRemote(mpris.Request(msg))

	case NotifiedMsg:
		return m.handleNotified(msg)

	case FadeFrameMsg:
		if m.Screen.Fading() {
			return m, fadeFrameCmd()
		}
		m.FadeTicking = false
		return m, nil

	case tea.KeyMsg:
		if m.ViewMode == ViewImport {
			return m.handleImportKey(msg)
		}
		return m.handlePlayerKey(msg)

	case tea.MouseMsg:
		if m.ViewMode == ViewPlayer {
			return m.handleMouse(msg)
		}
		return m, nil
	}

	if m.ViewMode == ViewImport {
		var cmd tea.Cmd
		m.PathInput, cmd = m.PathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// afterController refreshes the views that mirror the controller and
// starts the cover fade animation when the controller began one.
func (m Model) afterController(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	m.syncPlaylist()
	cmds = append(cmds, m.publish())
	if m.Screen.Fading() && !m.FadeTicking {
		m.FadeTicking = true
		cmds = append(cmds, fadeFrameCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) syncPlaylist() {
	m.Playlist.SetSongs(m.Controller.Songs())
	if idx := m.Controller.State().Index; idx != m.Playlist.Active() {
		m.Playlist.SetActive(idx)
	}
}

func (m *Model) resizePlaylist() {
	l := m.layout()
	m.Playlist.SetSize(l.panelWidth, l.panelHeight)
}

func (m *Model) setPlaylistOpen(open bool) {
	m.PlaylistOpen = open
	m.Playlist.SetFocused(open)
}

// handlePlayerKey routes keys on the player screen. The open playlist
// panel sees keys first; its bindings do not overlap the player's.
func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Help.ShowAll {
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		m.Help.ShowAll = false
		return m, nil
	}

	if m.PlaylistOpen {
		if msg.Type == tea.KeyEsc {
			m.setPlaylistOpen(false)
			return m, nil
		}
		if res := m.Playlist.Update(msg); res.Play {
			m.Controller.JumpTo(res.Index)
			m.setPlaylistOpen(false)
			return m.afterController()
		}
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.PlayPause):
		m.Controller.TogglePlayPause()
	case key.Matches(msg, m.Keys.Next):
		m.Controller.Next()
	case key.Matches(msg, m.Keys.Previous):
		m.Controller.Previous()
	case key.Matches(msg, m.Keys.Shuffle):
		m.Controller.ToggleShuffle()
	case key.Matches(msg, m.Keys.Repeat):
		m.Controller.ToggleRepeat()
	case key.Matches(msg, m.Keys.SeekForward):
		m.Controller.Seek(seekStep)
	case key.Matches(msg, m.Keys.SeekBackward):
		m.Controller.Seek(-seekStep)
	case key.Matches(msg, m.Keys.SeekPercent):
		if len(msg.Runes) == 1 {
			m.Controller.OnSeekRequest(float64(msg.Runes[0]-'0') / 10)
		}
	case key.Matches(msg, m.Keys.Playlist):
		m.setPlaylistOpen(!m.PlaylistOpen)
	case key.Matches(msg, m.Keys.AddMore):
		m.setPlaylistOpen(false)
		m.ViewMode = ViewImport
		m.Feedback, m.FeedbackIsError = "", false
		return m, m.PathInput.Focus()
	case key.Matches(msg, m.Keys.Layout):
		m.Wide = !m.Wide
		m.resizePlaylist()
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = true
		return m, nil
	}
	return m.afterController()
}

// handleMouse seeks on a progress line click and forwards events inside
// the open playlist panel with panel-relative coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.layout()

	if m.PlaylistOpen && msg.X >= l.panelX && msg.Y < l.panelHeight {
		rel := msg
		rel.X -= l.panelX
		if res := m.Playlist.Update(rel); res.Play {
			m.Controller.JumpTo(res.Index)
			m.setPlaylistOpen(false)
		}
		return m.afterController()
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress || msg.Y != l.barY {
		return m, nil
	}
	bar := playerbar.NewLayout(m.Screen.progress.Duration, l.barWidth)
	if fraction, ok := bar.SeekFraction(msg.X - l.barX); ok {
		m.Controller.OnSeekRequest(fraction)
	}
	return m.afterController()
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ImportKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.ImportKeys.Add):
		return m.submitImport(ImportAppend)
	case key.Matches(msg, m.ImportKeys.Replace):
		return m.submitImport(ImportReplace)
	case key.Matches(msg, m.ImportKeys.Start):
		return m.start()
	case key.Matches(msg, m.ImportKeys.Back):
		if m.Started {
			m.ViewMode = ViewPlayer
			m.PathInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.PathInput, cmd = m.PathInput.Update(msg)
	return m, cmd
}

// submitImport imports the typed path, or the default folder when empty.
func (m Model) submitImport(mode ImportMode) (tea.Model, tea.Cmd) {
	if m.Importing {
		return m, nil
	}
	path := strings.TrimSpace(m.PathInput.Value())
	if path == "" {
		path = m.Opts.DefaultFolder
	}
	if path == "" {
		m.Feedback, m.FeedbackIsError = "Enter a file or folder path", true
		return m, nil
	}

	m.Importing = true
	m.Feedback, m.FeedbackIsError = "Importing "+path+"…", false
	m.PathInput.SetValue("")
	return m, ImportCmd(m.ctx, m.Importer, []string{path}, mode)
}

func (m Model) handleImportDone(msg ImportDoneMsg) (tea.Model, tea.Cmd) {
	m.Importing = false
	if msg.Err != nil {
		m.Logger.Warn().Err(msg.Err).Int("mode", int(msg.Mode)).Msg("import failed")
		m.Feedback, m.FeedbackIsError = errmsg.Format(errmsg.OpImport, msg.Err), true
		return m, nil
	}

	switch msg.Mode {
	case ImportAppend:
		m.Controller.Add(msg.Result.Songs...)
	case ImportReplace, ImportStartup:
		m.Controller.Replace(msg.Result.Songs...)
		m.Started = false
	}
	m.Feedback, m.FeedbackIsError = msg.Result.Summary(), false
	m.syncPlaylist()

	if msg.Mode != ImportStartup {
		return m, nil
	}
	next, cmd := m.start()
	m = next.(Model)
	if m.Started {
		m.Controller.TogglePlayPause()
	}
	return m, cmd
}

// start leaves the import screen. The first playable song is loaded,
// paused, unless the player was already started.
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.Started {
		m.ViewMode = ViewPlayer
		m.PathInput.Blur()
		return m, nil
	}
	if len(m.Controller.Songs()) == 0 {
		m.Feedback, m.FeedbackIsError = noSongsFeedback, true
		return m, nil
	}
	if !m.Controller.Start() {
		m.Feedback, m.FeedbackIsError = "No playable song in the playlist", true
		return m, nil
	}

	m.Started = true
	m.ViewMode = ViewPlayer
	m.PathInput.Blur()
	return m.afterController()
}

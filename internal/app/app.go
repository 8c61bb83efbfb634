// Package app is the bubbletea root model: the import screen, the player
// screen and the wiring between user input, the playback controller and
// the scheduler.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/fader/internal/importer"
	"github.com/llehouerou/fader/internal/notify"
	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/sched"
	"github.com/llehouerou/fader/internal/ui/cover"
	"github.com/llehouerou/fader/internal/ui/playlistview"
	"github.com/llehouerou/fader/internal/ui/render"
)

// coverCacheSize is the number of rendered covers kept in memory.
const coverCacheSize = 64

// ViewMode is the active screen.
type ViewMode int

const (
	ViewImport ViewMode = iota
	ViewPlayer
)

// Options configures the model.
type Options struct {
	CoverWidth    int
	Marquee       render.Marquee
	DefaultFolder string   // offered by the import prompt
	Paths         []string // imported and started on launch
	Remote        Publisher       // media key integration, optional
	Notifier      notify.Notifier // "now playing" notifications, optional
	Logger        *zerolog.Logger
}

// Model is the root application model.
type Model struct {
	Controller *playback.Controller
	Screen     *Screen
	Loop       *sched.Loop
	Importer   *importer.Importer
	Covers     *cover.Cache

	Playlist   playlistview.Model
	PathInput  textinput.Model
	Help       help.Model
	Keys       KeyMap
	ImportKeys importKeyMap

	Opts   Options
	Logger *zerolog.Logger

	ViewMode        ViewMode
	Wide            bool
	PlaylistOpen    bool
	Started         bool
	Importing       bool
	Feedback        string
	FeedbackIsError bool
	FadeTicking     bool
	Width           int
	Height          int

	notifiedURL string
	notifyID    uint32

	ctx context.Context
}

// New creates the root model. The controller must render onto scr.
func New(ctrl *playback.Controller, scr *Screen, loop *sched.Loop, im *importer.Importer, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = &log.Logger
	}
	covers := cover.NewCache(coverCacheSize)

	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "file or folder path"
	if opts.DefaultFolder != "" {
		input.Placeholder = opts.DefaultFolder
	}
	input.Focus()

	return Model{
		Controller: ctrl,
		Screen:     scr,
		Loop:       loop,
		Importer:   im,
		Covers:     covers,
		Playlist:   playlistview.New(covers),
		PathInput:  input,
		Help:       help.New(),
		Keys:       DefaultKeyMap(),
		ImportKeys: defaultImportKeyMap(),
		Opts:       opts,
		Logger:     opts.Logger,
		ViewMode:   ViewImport,
		Wide:       true,
		Importing:  len(opts.Paths) > 0,
		ctx:        context.Background(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		TickCmd(),
		WatchScheduler(m.Loop),
		WatchTrackEnd(m.Controller.Finished()),
	}
	if len(m.Opts.Paths) > 0 {
		cmds = append(cmds, ImportCmd(m.ctx, m.Importer, m.Opts.Paths, ImportStartup))
	}
	return tea.Batch(cmds...)
}

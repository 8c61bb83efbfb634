package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/fader/cmd/scan"
	"github.com/llehouerou/fader/internal/app"
	"github.com/llehouerou/fader/internal/config"
	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/importer"
	"github.com/llehouerou/fader/internal/logging"
	"github.com/llehouerou/fader/internal/mpris"
	"github.com/llehouerou/fader/internal/notify"
	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/player"
	"github.com/llehouerou/fader/internal/resource"
	"github.com/llehouerou/fader/internal/sched"
	"github.com/llehouerou/fader/internal/stderr"
	"github.com/llehouerou/fader/internal/transition"
	"github.com/llehouerou/fader/internal/ui/render"
)

type Params struct {
	Paths   []string `pos:"true" optional:"true" help:"Music files or folders to import and play."`
	Config  string   `short:"c" long:"config" optional:"true" help:"Config file loaded after the default locations."`
	Shuffle bool     `short:"s" long:"shuffle" help:"Start with shuffle on."`
	Repeat  bool     `short:"r" long:"repeat" help:"Start with repeat on."`
	Volume  float64  `long:"volume" optional:"true" help:"Playback volume between 0 and 1." default:"1"`
	Debug   bool     `long:"debug" help:"Log debug messages."`
}

func main() {
	boa.CmdT[Params]{
		Use:     "fader",
		Short:   "Terminal music player with crossfading",
		Long:    "Import music files or folders into a playlist and play them with crossfades between songs.",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			scan.Cmd(),
		},
		RunFunc: func(params *Params, cmd *cobra.Command, _ []string) {
			os.Exit(run(params, cmd.Flags().Changed("volume")))
		},
	}.Run()
}

func run(params *Params, volumeSet bool) int {
	logPath, err := logging.Path()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	logger, logFile, err := logging.Open(logPath, params.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		return 1
	}
	defer logFile.Close()

	// Audio libraries write to stderr, which would corrupt the TUI.
	if err := stderr.Start(logger); err != nil {
		logger.Warn().Err(err).Msg("stderr redirect failed")
	}
	defer stderr.Stop()

	cfg, err := config.Load(params.Config)
	if err != nil {
		logger.Error().Err(err).Msg("config load failed")
		stderr.WriteOriginal(errmsg.Format(errmsg.OpConfigLoad, err) + "\n")
		return 1
	}
	if volumeSet {
		if params.Volume < 0 || params.Volume > 1 {
			stderr.WriteOriginal(fmt.Sprintf("volume must be between 0 and 1, got %g\n", params.Volume))
			return 1
		}
		cfg.SetVolume(params.Volume)
	}

	registry := resource.NewRegistry()
	loop := sched.NewLoop()
	defer loop.Close()
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // shuffle order

	engine := transition.New(cfg.EngineConfig(), loop, player.NewBeepFactory(registry), rng, logger)

	opts := cfg.PlaybackOptions()
	opts.Shuffle = params.Shuffle
	opts.Repeat = params.Repeat
	opts.Rand = rng
	opts.Releaser = registry
	opts.Logger = logger

	scr := app.NewScreen(opts.ArtFade)
	ctrl := playback.New(player.NewBeepHandle(registry), engine, loop, scr, opts)
	defer ctrl.Close()

	var remote *mpris.Adapter
	var publisher app.Publisher
	if cfg.Desktop.MPRIS {
		remote = mpris.New(logger)
		defer remote.Close()
		publisher = remote
	}
	var notifier notify.Notifier
	if cfg.Desktop.Notifications {
		if notifier, err = notify.New(); err != nil {
			logger.Warn().Err(err).Msg("notifications unavailable")
			notifier = nil
		}
	}

	ui := cfg.GetUIConfig()
	model := app.New(ctrl, scr, loop, importer.New(registry, logger), app.Options{
		CoverWidth: ui.CoverWidth,
		Marquee: render.Marquee{
			Scroll: time.Duration(ui.TitleScrollSeconds) * time.Second,
			Pause:  time.Duration(ui.TitleScrollPauseSeconds) * time.Second,
		},
		DefaultFolder: cfg.DefaultFolder,
		Paths:         params.Paths,
		Remote:        publisher,
		Notifier:      notifier,
		Logger:        logger,
	})

	logger.Info().Str("version", appVersion()).Int("paths", len(params.Paths)).Msg("starting")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if remote != nil {
		remote.Listen(func(r mpris.Request) { p.Send(app.RemoteMsg(r)) })
	}
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		stderr.WriteOriginal(fmt.Sprintf("Error running program: %v\n", err))
		return 1
	}
	return 0
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}

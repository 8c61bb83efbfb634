package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/transition"
)

const appName = "fader"

type Config struct {
	DefaultFolder string  `koanf:"default_folder"` // folder offered by the add-more prompt
	Volume        float64 `koanf:"volume"`         // 0..1, default: 1

	Transition TransitionConfig `koanf:"transition"`
	Popup      PopupConfig      `koanf:"popup"`
	UI         UIConfig         `koanf:"ui"`
	Desktop    DesktopConfig    `koanf:"desktop"`

	// Set by Load; not read from files.
	volumeSet bool
}

// TransitionConfig holds crossfade settings.
type TransitionConfig struct {
	WindowMs int    `koanf:"window_ms"` // crossfade length (default: 2000)
	Steps    int    `koanf:"steps"`     // volume steps over the window (default: 20)
	Curve    string `koanf:"curve"`     // "linear", "equal-power" or "spring" (default: "linear")
}

// PopupConfig holds the "next song" popup timings.
type PopupConfig struct {
	DelayMs   int `koanf:"delay_ms"`   // default: 100
	VisibleMs int `koanf:"visible_ms"` // default: 5000
	ExitMs    int `koanf:"exit_ms"`    // default: 300
}

// UIConfig holds display settings.
type UIConfig struct {
	ArtFadeMs               int `koanf:"art_fade_ms"`                // default: 500
	RestartThresholdMs      int `koanf:"restart_threshold_ms"`       // default: 3000
	CoverWidth              int `koanf:"cover_width"`                // 4-64 cells, default: 16
	TitleScrollSeconds      int `koanf:"title_scroll_seconds"`       // default: 8
	TitleScrollPauseSeconds int `koanf:"title_scroll_pause_seconds"` // default: 2
}

// DesktopConfig holds desktop integration settings.
type DesktopConfig struct {
	Notifications bool `koanf:"notifications"` // "now playing" notifications (default: false)
	MPRIS         bool `koanf:"mpris"`         // media keys over D-Bus (default: true)
}

// Load reads the config files in priority order (last wins). explicit, when
// non-empty, is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if explicit != "" {
		if err := k.Load(file.Provider(expandPath(explicit)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.volumeSet = k.Exists("volume")
	if !k.Exists("desktop.mpris") {
		cfg.Desktop.MPRIS = true
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/fader/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolume returns the default volume, 1 when unset or out of range.
func (c *Config) GetVolume() float64 {
	if !c.volumeSet || c.Volume < 0 || c.Volume > 1 {
		return 1
	}
	return c.Volume
}

// SetVolume overrides the configured volume (used by the --volume flag).
func (c *Config) SetVolume(v float64) {
	c.Volume = v
	c.volumeSet = true
}

// GetTransitionConfig returns the crossfade configuration with defaults applied.
func (c *Config) GetTransitionConfig() TransitionConfig {
	cfg := c.Transition

	if cfg.WindowMs <= 0 {
		cfg.WindowMs = 2000
	}
	if cfg.Steps <= 0 || cfg.Steps > 200 {
		cfg.Steps = 20
	}
	switch cfg.Curve {
	case transition.CurveLinear, transition.CurveEqualPower, transition.CurveSpring:
	default:
		cfg.Curve = transition.CurveLinear
	}

	return cfg
}

// GetPopupConfig returns the popup configuration with defaults applied.
func (c *Config) GetPopupConfig() PopupConfig {
	cfg := c.Popup

	if cfg.DelayMs <= 0 {
		cfg.DelayMs = 100
	}
	if cfg.VisibleMs <= 0 {
		cfg.VisibleMs = 5000
	}
	if cfg.ExitMs <= 0 {
		cfg.ExitMs = 300
	}

	return cfg
}

// GetUIConfig returns the display configuration with defaults applied.
func (c *Config) GetUIConfig() UIConfig {
	cfg := c.UI

	if cfg.ArtFadeMs <= 0 {
		cfg.ArtFadeMs = 500
	}
	if cfg.RestartThresholdMs <= 0 {
		cfg.RestartThresholdMs = 3000
	}
	if cfg.CoverWidth < 4 || cfg.CoverWidth > 64 {
		cfg.CoverWidth = 16
	}
	if cfg.TitleScrollSeconds <= 0 {
		cfg.TitleScrollSeconds = 8
	}
	if cfg.TitleScrollPauseSeconds < 0 {
		cfg.TitleScrollPauseSeconds = 2
	}

	return cfg
}

// EngineConfig converts the transition settings for the crossfade engine.
func (c *Config) EngineConfig() transition.Config {
	t := c.GetTransitionConfig()
	return transition.Config{
		Window:        ms(t.WindowMs),
		Steps:         t.Steps,
		Curve:         transition.CurveByName(t.Curve, t.Steps),
		DefaultVolume: c.GetVolume(),
	}
}

// PlaybackOptions converts the popup and UI settings for the controller.
// Rand, Releaser and Logger are left for the caller to fill.
func (c *Config) PlaybackOptions() playback.Options {
	p := c.GetPopupConfig()
	u := c.GetUIConfig()

	opts := playback.DefaultOptions()
	opts.PopupDelay = ms(p.DelayMs)
	opts.PopupVisible = ms(p.VisibleMs)
	opts.PopupExit = ms(p.ExitMs)
	opts.ArtFade = ms(u.ArtFadeMs)
	opts.RestartThreshold = ms(u.RestartThresholdMs)
	opts.DefaultVolume = c.GetVolume()
	return opts
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

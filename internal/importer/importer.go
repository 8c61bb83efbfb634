// Package importer turns file and folder paths into playlist songs.
//
// Each music file gets its tags read and a playable URL registered. A file
// that fails is logged and skipped; the rest of the batch continues.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/player"
	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/tags"
)

// UnknownArtist is shown for songs without an artist tag.
const UnknownArtist = "Unknown Artist"

// ErrNoFiles is returned when the given paths contain no music file.
var ErrNoFiles = errors.New("no music files found")

// Registrar hands out playable URLs. *resource.Registry satisfies it.
type Registrar interface {
	Register(path string) string
}

// Failure records a file that could not be imported.
type Failure struct {
	Path string
	Err  error
}

// Result is the outcome of an import batch.
type Result struct {
	Songs     []playlist.Song
	Requested int // music files found under the given paths
	Failed    []Failure
	Bytes     int64 // total size of imported files
}

// Summary returns the user-facing import feedback.
func (r Result) Summary() string {
	s := fmt.Sprintf("imported %d of %d file(s)", len(r.Songs), r.Requested)
	if r.Bytes > 0 {
		s += " (" + humanize.Bytes(uint64(r.Bytes)) + ")" //nolint:gosec // sizes are non-negative
	}
	return s
}

// Importer reads tags and registers URLs for music files.
type Importer struct {
	registry Registrar
	readTags func(path string) (*tags.Metadata, error)
	logger   *zerolog.Logger
}

// New creates an importer registering URLs in registry.
func New(registry Registrar, logger *zerolog.Logger) *Importer {
	if logger == nil {
		logger = &log.Logger
	}
	return &Importer{
		registry: registry,
		readTags: tags.Read,
		logger:   logger,
	}
}

// Import expands paths (folders are walked recursively) and imports every
// music file in order. Per-file failures are collected in the result.
// Returns ErrNoFiles if nothing importable was found, and the context error
// with a partial result if ctx is cancelled.
func (im *Importer) Import(ctx context.Context, paths []string) (Result, error) {
	files := im.expand(paths)
	result := Result{Requested: len(files)}
	if len(files) == 0 {
		return result, ErrNoFiles
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		song, size, err := im.importFile(ctx, path)
		if err != nil {
			im.logger.Warn().Msg(errmsg.FormatWith(errmsg.OpImportFile, path, err))
			result.Failed = append(result.Failed, Failure{Path: path, Err: err})
			continue
		}
		result.Songs = append(result.Songs, song)
		result.Bytes += size
	}

	im.logger.Info().
		Int("imported", len(result.Songs)).
		Int("requested", result.Requested).
		Int("failed", len(result.Failed)).
		Msg("import finished")
	return result, nil
}

func (im *Importer) importFile(ctx context.Context, path string) (playlist.Song, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return playlist.Song{}, 0, err
	}

	var md *tags.Metadata
	err = retryWithBackoff(ctx, "read tags", func() error {
		var readErr error
		md, readErr = im.readTags(path)
		return readErr
	})
	if err != nil {
		return playlist.Song{}, 0, err
	}

	return im.newSong(path, md), info.Size(), nil
}

// newSong builds a song from tags, applying the display fallbacks.
func (im *Importer) newSong(path string, md *tags.Metadata) playlist.Song {
	title := md.Title
	if title == "" {
		title = TitleFromFilename(path)
	}
	artist := md.Artist
	if artist == "" {
		artist = UnknownArtist
	}
	return playlist.Song{
		Path:             path,
		URL:              im.registry.Register(path),
		Title:            title,
		Artist:           artist,
		Album:            md.Album,
		Cover:            md.Cover,
		CoverMIME:        md.CoverMIME,
		HasEmbeddedCover: md.HasCover(),
	}
}

// TitleFromFilename returns the file name without its extension.
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	if title := strings.TrimSuffix(base, filepath.Ext(base)); title != "" {
		return title
	}
	return base
}

// expand resolves paths into the ordered, de-duplicated music files below them.
func (im *Importer) expand(paths []string) []string {
	var files []string
	for _, p := range paths {
		p = ExpandPath(p)
		info, err := os.Stat(p)
		if err != nil {
			im.logger.Warn().Err(err).Str("path", p).Msg("cannot read path")
			continue
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		walkErr := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				im.logger.Warn().Err(err).Str("path", path).Msg("cannot read folder entry")
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() && path != p && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if walkErr != nil {
			im.logger.Warn().Err(walkErr).Str("path", p).Msg("folder walk failed")
		}
	}

	music := lo.Filter(files, func(path string, _ int) bool {
		return player.IsMusicFile(path)
	})
	return lo.Uniq(music)
}

// ExpandPath expands a leading ~ to the home directory and cleans the path.
func ExpandPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

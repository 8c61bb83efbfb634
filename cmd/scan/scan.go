// Package scan implements "fader scan": import paths without playing and
// print the resulting playlist.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/llehouerou/fader/internal/importer"
	"github.com/llehouerou/fader/internal/logging"
	"github.com/llehouerou/fader/internal/resource"
)

type Params struct {
	Paths []string `pos:"true" required:"true" help:"Music files or folders to scan."`
	JSON  bool     `long:"json" help:"Output as JSON"`
}

// Entry is one scanned song in JSON output.
type Entry struct {
	Path     string `json:"path"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	HasCover bool   `json:"has_cover"`
}

// Report is the JSON output.
type Report struct {
	Songs     []Entry           `json:"songs"`
	Requested int               `json:"requested"`
	Failed    map[string]string `json:"failed,omitempty"`
	Bytes     int64             `json:"bytes"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:   "scan",
		Short: "List the songs an import would add",
		Long:  "Read the tags of every music file under the given paths and print the playlist they would form, without playing anything.",
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			exitCode := Run(ctx, params, os.Stdout, os.Stderr)
			stop()
			os.Exit(exitCode)
		},
	}.ToCobra()
}

func Run(ctx context.Context, params *Params, stdout, stderr io.Writer) int {
	im := importer.New(resource.NewRegistry(), logging.Discard())
	res, err := im.Import(ctx, params.Paths)
	if err != nil {
		fmt.Fprintf(stderr, "scan: %v\n", err)
		return 1
	}

	if params.JSON {
		data, err := json.MarshalIndent(report(res), "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "scan: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return exitCode(res)
	}

	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "Artist", "Album", "Cover", "File"})
	for i, s := range res.Songs {
		cover := ""
		if s.HasEmbeddedCover {
			cover = "✓"
		}
		t.AppendRow(table.Row{i + 1, s.Title, s.Artist, s.Album, cover, filepath.Base(s.Path)})
	}
	t.AppendFooter(table.Row{"", res.Summary()})
	t.Render()

	for _, f := range res.Failed {
		fmt.Fprintln(stderr, text.FgHiRed.Sprintf("skipped %s: %v", f.Path, f.Err))
	}
	return exitCode(res)
}

func report(res importer.Result) Report {
	r := Report{
		Songs:     make([]Entry, 0, len(res.Songs)),
		Requested: res.Requested,
		Bytes:     res.Bytes,
	}
	for _, s := range res.Songs {
		r.Songs = append(r.Songs, Entry{
			Path:     s.Path,
			Title:    s.Title,
			Artist:   s.Artist,
			Album:    s.Album,
			HasCover: s.HasEmbeddedCover,
		})
	}
	if len(res.Failed) > 0 {
		r.Failed = make(map[string]string, len(res.Failed))
		for _, f := range res.Failed {
			r.Failed[f.Path] = f.Err.Error()
		}
	}
	return r
}

// exitCode is 2 when some files were skipped.
func exitCode(res importer.Result) int {
	if len(res.Failed) > 0 {
		return 2
	}
	return 0
}

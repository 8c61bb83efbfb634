package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/fader/internal/importer"
	"github.com/llehouerou/fader/internal/sched"
)

const (
	tickInterval      = 250 * time.Millisecond
	fadeFrameInterval = 40 * time.Millisecond
)

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fadeFrameCmd schedules the next cover fade frame.
func fadeFrameCmd() tea.Cmd {
	return tea.Tick(fadeFrameInterval, func(time.Time) tea.Msg {
		return FadeFrameMsg{}
	})
}

// waitForChannel creates a command that waits for a value from a channel
// and converts it to a message. A closed channel yields no message.
func waitForChannel[T any](ch <-chan T, onResult func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return onResult(v)
	}
}

// WatchScheduler waits for the next fired task of loop.
func WatchScheduler(loop *sched.Loop) tea.Cmd {
	if loop == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case t := <-loop.Fired():
			return TaskFiredMsg{Task: t}
		case <-loop.Done():
			return nil
		}
	}
}

// WatchTrackEnd waits for the next end-of-track signal.
func WatchTrackEnd(finished <-chan struct{}) tea.Cmd {
	return waitForChannel(finished, func(struct{}) tea.Msg {
		return TrackEndMsg{}
	})
}

// ImportCmd imports paths in the background.
func ImportCmd(ctx context.Context, im *importer.Importer, paths []string, mode ImportMode) tea.Cmd {
	return func() tea.Msg {
		res, err := im.Import(ctx, paths)
		return ImportDoneMsg{Mode: mode, Result: res, Err: err}
	}
}

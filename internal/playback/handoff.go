package playback

import (
	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/player"
	"github.com/llehouerou/fader/internal/transition"
)

// handoff receives the crossfade callbacks on behalf of a Controller.
type handoff struct {
	c *Controller
}

var _ transition.Callbacks = handoff{}

func (h handoff) OnMetadataSwap(index int, withTransition bool) {
	c := h.c
	song := c.queue.JumpTo(index)
	if song == nil {
		return
	}
	c.render.RenderSong(index, *song, withTransition)
	if !withTransition {
		return
	}
	c.fadeTask.Cancel()
	c.render.RenderArtFade(true)
	c.fadeTask = c.sched.After(c.opts.ArtFade, func() {
		c.render.RenderArtFade(false)
	})
}

// OnFinalize moves the secondary's song and position onto the primary.
func (h handoff) OnFinalize(index int, secondary player.Handle) {
	c := h.c
	src := secondary.Source()
	pos := secondary.Position()
	d := max(secondary.Duration(), 0)

	c.resetPopupSchedule()
	if err := c.primary.SetSource(src); err != nil {
		c.logger.Error().Err(err).Int("index", index).Str("source", src).Msg("crossfade handoff failed")
		c.render.RenderError(errmsg.Format(errmsg.OpTransition, err))
		c.setPlaying(false)
		return
	}
	c.primary.SetPosition(pos)
	c.primary.SetVolume(c.opts.DefaultVolume)

	c.playing = true
	c.render.RenderProgress(Progress{Duration: d})
	c.play()
	c.render.RenderPlaying(true)
	c.logger.Debug().Int("index", index).Dur("position", pos).Msg("crossfade finalized")
}

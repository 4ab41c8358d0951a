// Given a transition between SVG documents, implements how to
// draw its frames and encode them as an animation.
// Frames are rasterized concurrently with svgraster.
package svgdraw

import (
	"context"
	"image"
	"runtime"
	"time"

	"github.com/benoitkugler/svgmorph/svgmorph"
	"github.com/benoitkugler/svgmorph/svgraster"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Timeline maps frame numbers to the global time of a transition.
type Timeline struct {
	Keyframes           int // number of documents
	FramesPerTransition int // frames between two consecutive keyframes
}

// NewTimeline returns the timeline of `tr` at `fps` frames per second,
// each transition between two keyframes lasting `perTransition`.
func NewTimeline(tr *svgmorph.Transition, fps float64, perTransition time.Duration) Timeline {
	n := int(fps*perTransition.Seconds() + 0.5)
	if n < 1 {
		n = 1
	}
	return Timeline{Keyframes: tr.Len(), FramesPerTransition: n}
}

// Len returns the number of frames, the last keyframe included.
func (tl Timeline) Len() int {
	if tl.Keyframes <= 1 {
		return 1
	}
	return (tl.Keyframes-1)*tl.FramesPerTransition + 1
}

// Time returns the global time of the frame `i`, in [0, Keyframes-1].
func (tl Timeline) Time(i int) float64 {
	if tl.Keyframes <= 1 {
		return 0
	}
	if i >= tl.Len()-1 { // exact end
		return float64(tl.Keyframes - 1)
	}
	return float64(i) / float64(tl.FramesPerTransition)
}

// RenderOptions controls the frame loop.
type RenderOptions struct {
	Workers  int    // number of frames rendered concurrently, runtime.NumCPU() if zero
	Progress func() // if not nil, called once per rendered frame, possibly concurrently
}

// Render produces every frame of the timeline.
// The first error stops the rendering.
func Render(ctx context.Context, tr *svgmorph.Transition, tl Timeline, ro svgraster.Options, opts RenderOptions) ([]*image.RGBA, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	frames := make([]*image.RGBA, tl.Len())

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range frames {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			doc, err := tr.Frame(tl.Time(i))
			if err != nil {
				return errors.Wrapf(err, "frame %d", i)
			}
			img, err := svgraster.Rasterize(doc, ro)
			if err != nil {
				return errors.Wrapf(err, "frame %d", i)
			}
			frames[i] = img
			logrus.Debugf("frame %d (t = %.3f) rendered in %s", i, tl.Time(i), time.Since(start))
			if opts.Progress != nil {
				opts.Progress()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

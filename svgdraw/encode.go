package svgdraw

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// WriteGIF encodes the frames as an animated GIF, looping forever,
// each frame being displayed for `delay`.
func WriteGIF(w io.Writer, frames []*image.RGBA, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("no frame to encode")
	}
	// GIF delays are in 100ths of a second
	centis := int(delay / (10 * time.Millisecond))
	if centis < 1 {
		centis = 1
	}
	anim := &gif.GIF{
		Image: make([]*image.Paletted, len(frames)),
		Delay: make([]int, len(frames)),
	}
	for i, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min)
		anim.Image[i] = paletted
		anim.Delay[i] = centis
	}
	return gif.EncodeAll(w, anim)
}

// WritePNGs saves each frame in `dir` as <prefix><index>.png,
// and returns the created files.
func WritePNGs(dir, prefix string, frames []*image.RGBA) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	digits := len(fmt.Sprint(len(frames) - 1))
	out := make([]string, len(frames))
	for i, frame := range frames {
		name := filepath.Join(dir, fmt.Sprintf("%s%0*d.png", prefix, digits, i))
		if err := writePNG(name, frame); err != nil {
			return nil, err
		}
		out[i] = name
	}
	return out, nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", name)
	}
	return f.Close()
}

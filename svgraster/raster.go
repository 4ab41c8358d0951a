// Implements a raster backend to render SVG documents,
// by wrapping oksvg and rasterx.
package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Options controls the output image.
type Options struct {
	// Size of the image. When zero, the size of the viewBox is used.
	// The drawing is scaled to fit, preserving its aspect ratio, and centered.
	Width, Height int

	// Background is painted before the drawing.
	// nil means transparent.
	Background color.Color
}

// Rasterize renders the document into a new image.
func Rasterize(doc *svgtree.Document, opts Options) (*image.RGBA, error) {
	content, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(content), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s", doc.Source)
	}
	vw, vh := icon.ViewBox.W, icon.ViewBox.H
	if vw <= 0 || vh <= 0 {
		return nil, errors.Errorf("rendering %s: empty viewBox", doc.Source)
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = int(math.Ceil(vw))
	}
	if h <= 0 {
		h = int(math.Ceil(vh))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	x, y, tw, th := fit(vw, vh, float64(w), float64(h))
	icon.SetTarget(x, y, tw, th)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// fit returns the largest rectangle with the aspect ratio
// vw/vh, centered in a w x h area.
func fit(vw, vh, w, h float64) (x, y, tw, th float64) {
	scale := math.Min(w/vw, h/vh)
	tw, th = vw*scale, vh*scale
	return (w - tw) / 2, (h - th) / 2, tw, th
}

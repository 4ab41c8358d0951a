// Implements a PDF backend for rendered animations,
// by wrapping github.com/jung-kurt/gofpdf: each frame
// is written on its own page.
package svgpdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// captionHeight is the room left below a frame for its caption, in points
const captionHeight = 14

// StoryboardOptions controls the layout of the pages.
type StoryboardOptions struct {
	Margin float64 // around each frame, in points

	// Caption returns the text written below the frame `i`.
	// nil disables captions.
	Caption func(i int) string
}

// WriteStoryboard writes `frames` as a PDF document to `w`,
// one frame per page, one pixel per point.
func WriteStoryboard(w io.Writer, frames []*image.RGBA, opts StoryboardOptions) error {
	if len(frames) == 0 {
		return errors.New("no frame to write")
	}
	first := frames[0].Bounds()
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    pageSize(first, opts),
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 9)

	var buf bytes.Buffer
	for i, frame := range frames {
		bounds := frame.Bounds()
		pdf.AddPageFormat("P", pageSize(bounds, opts))

		buf.Reset()
		if err := png.Encode(&buf, frame); err != nil {
			return errors.Wrapf(err, "encoding frame %d", i)
		}
		name := fmt.Sprintf("frame%d", i)
		imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(name, imgOpts, &buf)
		pdf.ImageOptions(name, opts.Margin, opts.Margin,
			float64(bounds.Dx()), float64(bounds.Dy()), false, imgOpts, 0, "")

		if opts.Caption != nil {
			pdf.Text(opts.Margin, opts.Margin+float64(bounds.Dy())+captionHeight-4, opts.Caption(i))
		}
		if err := pdf.Error(); err != nil {
			return errors.Wrapf(err, "writing frame %d", i)
		}
	}
	return pdf.Output(w)
}

func pageSize(bounds image.Rectangle, opts StoryboardOptions) gofpdf.SizeType {
	size := gofpdf.SizeType{
		Wd: float64(bounds.Dx()) + 2*opts.Margin,
		Ht: float64(bounds.Dy()) + 2*opts.Margin,
	}
	if opts.Caption != nil {
		size.Ht += captionHeight
	}
	return size
}

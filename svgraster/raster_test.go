package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func assertColor(t *testing.T, expected color.RGBA, got color.Color) {
	r, g, b, a := got.RGBA()
	assert.InDelta(t, expected.R, uint8(r>>8), 2)
	assert.InDelta(t, expected.G, uint8(g>>8), 2)
	assert.InDelta(t, expected.B, uint8(b>>8), 2)
	assert.InDelta(t, expected.A, uint8(a>>8), 2)
}

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	palm  = color.RGBA{0xd0, 0xa0, 0x80, 0xff}
)

func readHand(t *testing.T) *svgtree.Document {
	doc, err := svgtree.ReadDocument("../svgmorph/testdata/hand0.svg")
	require.NoError(t, err)
	return doc
}

func TestRasterize(t *testing.T) {
	img, err := Rasterize(readHand(t), Options{Width: 50, Height: 50, Background: white})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())

	assertColor(t, white, img.At(1, 1))
	assertColor(t, palm, img.At(25, 40))

	b, err := toPngBytes(img)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestRasterizeFit(t *testing.T) {
	img, err := Rasterize(readHand(t), Options{Width: 100, Height: 50, Background: white})
	require.NoError(t, err)

	// the drawing is centered horizontally
	assertColor(t, palm, img.At(50, 40))
	assertColor(t, white, img.At(5, 25))
	assertColor(t, white, img.At(95, 25))
}

func TestRasterizeDefaultSize(t *testing.T) {
	img, err := Rasterize(readHand(t), Options{})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())
	assertColor(t, color.RGBA{}, img.At(1, 1))
	assertColor(t, palm, img.At(50, 80))
}

func TestRasterizeNoViewBox(t *testing.T) {
	doc, err := svgtree.ReadDocumentStream(strings.NewReader(`<svg><path d="M 0 0 L 1 1"/></svg>`), "empty")
	require.NoError(t, err)
	_, err = Rasterize(doc, Options{})
	assert.Error(t, err)
}

func TestFit(t *testing.T) {
	x, y, w, h := fit(100, 50, 200, 200)
	assert.Equal(t, []float64{0, 50, 200, 100}, []float64{x, y, w, h})
}

func TestParseColor(t *testing.T) {
	for s, expected := range map[string]color.Color{
		"#fff":        white,
		"#D0A080":     palm,
		" gray ":      color.RGBA{0x80, 0x80, 0x80, 0xff},
		"none":        color.Transparent,
		"transparent": color.Transparent,
	} {
		got, err := ParseColor(s)
		require.NoError(t, err, s)
		assert.Equal(t, expected, got, s)
	}

	for _, s := range []string{"#ff", "#gggggg", "notacolor", ""} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

package svgmorph

import (
	"github.com/benoitkugler/svgmorph/svgpath"
	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/pkg/errors"
)

// Interpolate returns a new document, between `a` (at t = 0) and `b` (at t = 1).
// `ba` and `bb` are the bijections from the reference document to `a` and `b`.
//
// For each pair of matched paths, the geometry is linearly interpolated.
// Anything else keeps the state of `a`. The inputs are not modified.
func Interpolate(a, b *svgtree.Document, ba, bb Biject, t float64) (*svgtree.Document, error) {
	if !(0 <= t && t <= 1) {
		return nil, errors.Wrapf(ErrTime, "interpolation time %g not in [0, 1]", t)
	}
	if len(ba) != len(bb) {
		return nil, errors.Errorf("bijections have different lengths (%d and %d)", len(ba), len(bb))
	}

	out := a.Clone()
	for key, i0 := range ba {
		i1 := bb[key]
		if i0 >= len(a.Root.Children) || i1 >= len(b.Root.Children) {
			return nil, errors.Errorf("bijection index out of range for element %d", key)
		}
		node0 := a.Root.Children[i0]
		node1 := b.Root.Children[i1]
		if node0.Tag != pathTag {
			continue
		}

		data0, err := parseGeometry(node0)
		if err != nil {
			return nil, errors.Wrapf(err, "file %s", a.Source)
		}
		data1, err := parseGeometry(node1)
		if err != nil {
			return nil, errors.Wrapf(err, "file %s", b.Source)
		}
		// TODO: interpolate relative commands in absolute coordinates
		outData, err := svgpath.Lerp(data0, data1, t)
		if err != nil {
			return nil, errors.Wrapf(err, "interpolating %s of %s and %s",
				svgtree.AddressOf(node0), a.Source, b.Source)
		}
		out.Root.Children[i0].Set(geomKey, outData.ToSVGPath())
	}
	return out, nil
}

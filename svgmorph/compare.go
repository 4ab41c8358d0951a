// Matches the shapes of structurally similar SVG documents
// and interpolates their geometry, producing the intermediate
// documents of an animation.
package svgmorph

import (
	"github.com/benoitkugler/svgmorph/svgpath"
	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/pkg/errors"
)

var (
	// ErrStructure is returned when the documents can't be animated together.
	ErrStructure = errors.New("documents have different structures")
	// ErrNoCorrespondent is returned when a shape of the reference document
	// has no match in another document.
	ErrNoCorrespondent = errors.New("no corresponding shape")
	// ErrIncompatibleID is returned when two shapes share an id
	// but not their geometry.
	ErrIncompatibleID = errors.New("shapes with the same id are not compatible")
	// ErrTime is returned for time values out of range.
	ErrTime = errors.New("time out of range")
)

const (
	pathTag = "path"
	geomKey = "d"
	idKey   = "id"
)

func parseGeometry(n *svgtree.Node) (svgpath.Path, error) {
	p, err := svgpath.Parse(n.Get(geomKey))
	if err != nil {
		return nil, errors.Wrapf(err, "element %s", svgtree.AddressOf(n))
	}
	return p, nil
}

// Compatible returns true if `a` and `b` may be interpolated:
// they must have the same tag and, for paths, the same sequence of commands
// (absolute and relative versions of a command are considered equal).
// Other elements are only compared by tag.
func Compatible(a, b *svgtree.Node) (bool, error) {
	return make(comparator).compatible(a, b)
}

// comparator caches the parsed geometry of the nodes
type comparator map[*svgtree.Node]svgpath.Path

func (c comparator) geometry(n *svgtree.Node) (svgpath.Path, error) {
	if p, ok := c[n]; ok {
		return p, nil
	}
	p, err := parseGeometry(n)
	if err != nil {
		return nil, err
	}
	c[n] = p
	return p, nil
}

func (c comparator) compatible(a, b *svgtree.Node) (bool, error) {
	if a.Tag != b.Tag {
		return false, nil
	}
	if a.Tag != pathTag {
		return true, nil
	}
	pa, err := c.geometry(a)
	if err != nil {
		return false, err
	}
	pb, err := c.geometry(b)
	if err != nil {
		return false, err
	}
	return pa.SameShape(pb), nil
}

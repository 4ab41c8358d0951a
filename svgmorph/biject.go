package svgmorph

import (
	"fmt"

	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Biject maps the index of a top-level child of the reference
// document to the index of the corresponding child in another document.
type Biject []int

// MatchMode selects how the top-level shapes are associated.
type MatchMode uint8

const (
	// OneToOne binds each target shape at most once. Shapes are first matched
	// by id, then the remaining ones by the first compatible free shape.
	OneToOne MatchMode = iota
	// Permissive matches each reference shape independently: by id if
	// possible, else by the first compatible shape. Two reference shapes
	// may then share the same target.
	Permissive
)

func (m MatchMode) String() string {
	switch m {
	case OneToOne:
		return "one-to-one"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("<unknown MatchMode %d>", uint8(m))
	}
}

// ParseMatchMode is the inverse of MatchMode.String
func ParseMatchMode(s string) (MatchMode, error) {
	switch s {
	case "one-to-one", "":
		return OneToOne, nil
	case "permissive":
		return Permissive, nil
	default:
		return 0, errors.Errorf("unknown matching mode %q", s)
	}
}

// Validate checks that all the documents have the same viewBox
// and the same number of top-level elements as the first one.
func Validate(docs []*svgtree.Document) error {
	if len(docs) == 0 {
		return errors.Wrap(ErrStructure, "no document")
	}
	ref := docs[0]
	for _, doc := range docs {
		if doc.ViewBox() != ref.ViewBox() {
			return errors.Wrapf(ErrStructure, "file %s has different viewBox %q", doc.Source, doc.ViewBox())
		}
		if len(doc.Root.Children) != len(ref.Root.Children) {
			return errors.Wrapf(ErrStructure, "file %s has different number of children %d", doc.Source, len(doc.Root.Children))
		}
	}
	return nil
}

// resolver holds the state of one matching between two documents
type resolver struct {
	cmp         comparator
	ref, target *svgtree.Document
}

// matchID returns the index of the first target child with the
// same id as `child`, or -1. It is an error if the two elements are not compatible.
func (r resolver) matchID(child *svgtree.Node) (int, error) {
	id, ok := child.Lookup(idKey)
	if !ok {
		return -1, nil
	}
	for j, candidate := range r.target.Root.Children {
		if v, ok := candidate.Lookup(idKey); !ok || v != id {
			continue
		}
		ok, err := r.cmp.compatible(child, candidate)
		if err != nil {
			return -1, errors.Wrapf(err, "file %s", r.target.Source)
		}
		if !ok {
			return -1, errors.Wrapf(ErrIncompatibleID, "file %s: match %s by id does not match by shape",
				r.target.Source, svgtree.AddressOf(child))
		}
		return j, nil
	}
	logrus.Debugf("file %s: id %q of %s not found, matching by shape", r.target.Source, id, svgtree.AddressOf(child))
	return -1, nil
}

// matchShape returns the index of the first target child compatible
// with `child` and not already taken, or -1.
func (r resolver) matchShape(child *svgtree.Node, taken []bool) (int, error) {
	for j, candidate := range r.target.Root.Children {
		if taken != nil && taken[j] {
			continue
		}
		ok, err := r.cmp.compatible(child, candidate)
		if err != nil {
			return -1, errors.Wrapf(err, "file %s", r.target.Source)
		}
		if ok {
			return j, nil
		}
	}
	return -1, nil
}

func (r resolver) errNoMatch(child *svgtree.Node) error {
	return errors.Wrapf(ErrNoCorrespondent, "file %s: could not find a match for %s",
		r.target.Source, svgtree.AddressOf(child))
}

func (r resolver) permissive() (Biject, error) {
	children := r.ref.Root.Children
	out := make(Biject, len(children))
	for i, child := range children {
		j, err := r.matchID(child)
		if err != nil {
			return nil, err
		}
		if j == -1 {
			j, err = r.matchShape(child, nil)
			if err != nil {
				return nil, err
			}
		}
		if j == -1 {
			return nil, r.errNoMatch(child)
		}
		out[i] = j
	}
	return out, nil
}

func (r resolver) oneToOne() (Biject, error) {
	children := r.ref.Root.Children
	out := make(Biject, len(children))
	taken := make([]bool, len(r.target.Root.Children))
	matched := make([]bool, len(children))

	// first pass: ids
	for i, child := range children {
		j, err := r.matchID(child)
		if err != nil {
			return nil, err
		}
		if j == -1 {
			continue
		}
		if taken[j] {
			return nil, errors.Wrapf(ErrNoCorrespondent, "file %s: match %s by id is already bound to %s",
				r.target.Source, svgtree.AddressOf(child), svgtree.AddressOf(r.target.Root.Children[j]))
		}
		out[i], taken[j], matched[i] = j, true, true
	}

	// second pass: the first free compatible element
	for i, child := range children {
		if matched[i] {
			continue
		}
		j, err := r.matchShape(child, taken)
		if err != nil {
			return nil, err
		}
		if j == -1 {
			return nil, r.errNoMatch(child)
		}
		out[i], taken[j] = j, true
	}
	return out, nil
}

// ResolveBiject associates each top-level element of `ref` to
// a top-level element of `target`.
// Both documents are expected to have passed Validate.
func ResolveBiject(ref, target *svgtree.Document, mode MatchMode) (Biject, error) {
	r := resolver{cmp: make(comparator), ref: ref, target: target}
	if mode == Permissive {
		return r.permissive()
	}
	return r.oneToOne()
}

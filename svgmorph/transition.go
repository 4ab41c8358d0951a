package svgmorph

import (
	"math"

	"github.com/benoitkugler/svgmorph/svgtree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Transition animates a sequence of documents
// describing the same scene.
//
// Typical usage:
//
//	trans, err := LoadTransition(filenames)
//	for i := 0; i <= 100; i++ {
//		doc, err := trans.Frame(trans.Duration() * float64(i) / 100)
//		// render doc...
//	}
//
// A Transition is immutable once created, and may be
// used concurrently.
type Transition struct {
	docs    []*svgtree.Document
	bijects []Biject
	mode    MatchMode
}

// Option customizes a Transition.
type Option func(*Transition)

// WithMatchMode sets the strategy used to match the shapes (OneToOne by default).
func WithMatchMode(mode MatchMode) Option {
	return func(t *Transition) { t.mode = mode }
}

// NewTransition checks that `docs` may be animated and matches their
// shapes against the first document.
func NewTransition(docs []*svgtree.Document, opts ...Option) (*Transition, error) {
	tr := &Transition{docs: append([]*svgtree.Document(nil), docs...)}
	for _, opt := range opts {
		opt(tr)
	}
	if err := Validate(tr.docs); err != nil {
		return nil, err
	}
	ref := tr.docs[0]
	tr.bijects = make([]Biject, len(tr.docs))
	for i, doc := range tr.docs {
		b, err := ResolveBiject(ref, doc, tr.mode)
		if err != nil {
			return nil, err
		}
		tr.bijects[i] = b
	}
	logrus.Debugf("transition between %d documents, matching %d shapes (%s)", len(tr.docs), len(ref.Root.Children), tr.mode)
	return tr, nil
}

// LoadTransition reads the given files and calls NewTransition.
func LoadTransition(files []string, opts ...Option) (*Transition, error) {
	docs := make([]*svgtree.Document, len(files))
	for i, file := range files {
		doc, err := svgtree.ReadDocument(file)
		if err != nil {
			return nil, err
		}
		docs[i] = doc
	}
	return NewTransition(docs, opts...)
}

// Len returns the number of keyframes.
func (tr *Transition) Len() int { return len(tr.docs) }

// Duration returns the maximum global time accepted by Frame.
func (tr *Transition) Duration() float64 { return float64(len(tr.docs) - 1) }

// Documents returns the keyframes. They must not be modified.
func (tr *Transition) Documents() []*svgtree.Document { return tr.docs }

// Bijects returns the bijections from the first document
// to each document. They must not be modified.
func (tr *Transition) Bijects() []Biject { return tr.bijects }

// MatchMode returns the strategy used to build the bijections.
func (tr *Transition) MatchMode() MatchMode { return tr.mode }

// Interpolate interpolates between the keyframes `n0` and `n1`
// at time `t` in [0, 1].
func (tr *Transition) Interpolate(n0, n1 int, t float64) (*svgtree.Document, error) {
	if n0 < 0 || n0 >= len(tr.docs) || n1 < 0 || n1 >= len(tr.docs) {
		return nil, errors.Errorf("keyframe indices (%d, %d) out of range [0, %d[", n0, n1, len(tr.docs))
	}
	return Interpolate(tr.docs[n0], tr.docs[n1], tr.bijects[n0], tr.bijects[n1], t)
}

// Frame returns the document at global time `t`, in [0, Duration()]:
// the integer part of `t` selects the keyframes, the fractional part is the
// interpolation time between them.
func (tr *Transition) Frame(t float64) (*svgtree.Document, error) {
	if math.IsNaN(t) || t < 0 || t > tr.Duration() {
		return nil, errors.Wrapf(ErrTime, "frame time %g not in [0, %g]", t, tr.Duration())
	}
	if len(tr.docs) == 1 {
		return tr.docs[0].Clone(), nil
	}
	i, r := math.Modf(t)
	n := int(i)
	if n >= len(tr.docs)-1 { // last keyframe
		n, r = len(tr.docs)-2, 1
	}
	return tr.Interpolate(n, n+1, r)
}

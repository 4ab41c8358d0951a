package svgpath

import "github.com/pkg/errors"

// Lerp blends the operands of `a` and `b`, which must have the same shape,
// as (1-t)*a + t*b. The letters are taken from `a`, except at t == 1
// where the result is a copy of `b`.
// Relative commands are blended like absolute ones, which is only
// meaningful when both paths share the same reference points.
func Lerp(a, b Path, t float64) (Path, error) {
	if !a.SameShape(b) {
		return nil, errors.Wrapf(ErrMalformed, "can't blend paths of different shapes: %q and %q", a, b)
	}
	out := make(Path, len(a))
	for i, cmd := range a {
		args := make([]float64, len(cmd.Args))
		for j, v := range cmd.Args {
			args[j] = lerp(v, b[i].Args[j], t)
		}
		letter := cmd.Letter
		if t == 1 {
			letter = b[i].Letter
		}
		out[i] = Command{Letter: letter, Args: args}
	}
	return out, nil
}

// lerp is exact at the end points
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return (1-t)*a + t*b
}

// Implements an abstract representation of
// svg path data, as a sequence of commands
// which can be parsed, serialized and blended.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned (wrapped) when a path string
// does not follow the path grammar.
var ErrMalformed = errors.New("malformed path data")

// arities gives the number of operands of each command,
// indexed by the upper case letter.
var arities = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

// Command is one instruction of a path. The letter case is kept
// as written: lower case letters are relative commands.
type Command struct {
	Letter byte
	Args   []float64
}

// Kind returns the upper case letter of the command.
func (c Command) Kind() byte { return upper(c.Letter) }

// IsAbsolute returns false for relative (lower case) commands.
func (c Command) IsAbsolute() bool { return c.Letter == c.Kind() }

// Arity returns the number of operands expected by the command.
func (c Command) Arity() int { return arities[c.Kind()] }

func (c Command) String() string {
	chunks := make([]string, 0, len(c.Args)+1)
	chunks = append(chunks, string(c.Letter))
	for _, a := range c.Args {
		chunks = append(chunks, strconv.FormatFloat(a, 'g', -1, 64))
	}
	return strings.Join(chunks, " ")
}

// Path describes a sequence of SVG path commands.
// Implicit repetitions are expanded: each Command
// carries exactly Arity() operands.
type Path []Command

// ToSVGPath returns a string representation of the path,
// suitable for a `d` attribute.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, cmd := range p {
		chunks[i] = cmd.String()
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Serialize is the same as p.ToSVGPath()
func Serialize(p Path) string { return p.ToSVGPath() }

// SameShape returns true if `p` and `other` have the same
// command sequence, ignoring operand values and the absolute/relative
// distinction.
func (p Path) SameShape(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i, cmd := range p {
		if cmd.Kind() != other[i].Kind() || len(cmd.Args) != len(other[i].Args) {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the path.
func (p Path) Copy() Path {
	out := make(Path, len(p))
	for i, cmd := range p {
		out[i] = Command{Letter: cmd.Letter, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

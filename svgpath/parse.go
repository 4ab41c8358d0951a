package svgpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func isCommand(b byte) bool {
	_, ok := arities[upper(b)]
	return ok
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
		})
}

// Parse splits the path string into a list of commands.
// A command letter followed by several groups of operands
// is expanded into as many commands.
// Parsing stops at the first close path command: what follows
// it is ignored.
func Parse(s string) (Path, error) {
	s = strings.TrimSpace(s)

	// locate every command letter
	var starts []int
	for i := 0; i < len(s); i++ {
		if isCommand(s[i]) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		if s != "" {
			return nil, errors.Wrapf(ErrMalformed, "no command in %q", s)
		}
		return nil, nil
	}
	if lead := strings.TrimSpace(s[:starts[0]]); lead != "" {
		return nil, errors.Wrapf(ErrMalformed, "data %q before the first command", lead)
	}

	var out Path
	for k, start := range starts {
		letter := s[start]
		n := arities[upper(letter)]
		if n == 0 { // close path
			out = append(out, Command{Letter: letter})
			return out, nil
		}

		end := len(s)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		data := s[start+1 : end]
		nums, err := parseNumbers(data)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, errors.Wrapf(ErrMalformed, "command %q has no operands", string(letter))
		}
		if len(nums)%n != 0 {
			return nil, errors.Wrapf(ErrMalformed, "command %q expects a multiple of %d operands, got %d in %q",
				string(letter), n, len(nums), strings.TrimSpace(data))
		}
		for len(nums) > 0 {
			out = append(out, Command{Letter: letter, Args: nums[:n:n]})
			nums = nums[n:]
		}
	}
	return out, nil
}

// parseNumbers only accepts finite decimal numbers: strconv
// also reads hexadecimal floats, Inf and NaN.
func parseNumbers(data string) ([]float64, error) {
	fields := splitOnCommaOrSpace(data)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err == nil && (strings.ContainsAny(f, "xX") || math.IsInf(v, 0) || math.IsNaN(v)) {
			err = strconv.ErrSyntax
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "invalid number %q in %q", f, strings.TrimSpace(data))
		}
		out[i] = v
	}
	return out, nil
}

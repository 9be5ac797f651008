package pyparser

import (
	"errors"
	"math"
	"strconv"
)

// Number is the numeric payload of a NUMBER token: an integer or a
// float, discriminated by IsFloat.
type Number struct {
	IsFloat bool
	Int     int64
	Float   float64
}

// String returns the canonical text form of the number.
func (n Number) String() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(n.Int, 10)
}

// parseNumber converts scanned digit text into a Number. The scanner
// only hands over digit runs with at most one dot, so the only possible
// failure is int64 overflow, which clamps: the lexer has no error path.
func parseNumber(text string, isFloat bool) Number {
	if isFloat {
		f, _ := strconv.ParseFloat(text, 64)
		return Number{IsFloat: true, Float: f}
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		i = math.MaxInt64
	}
	return Number{Int: i}
}

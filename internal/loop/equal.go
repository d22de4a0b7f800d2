package loop

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Comparison rule names accepted by ParseMatcher.
const (
	ComparisonLoose  = "loose"
	ComparisonStrict = "strict"
)

// Matcher decides whether a guess equals the target.
type Matcher interface {
	Match(target int, input any) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(target int, input any) bool

// Match calls f(target, input).
func (f MatcherFunc) Match(target int, input any) bool {
	return f(target, input)
}

var (
	// Loose converts the guess to a number before comparing, so "30",
	// " 30 ", "30.0", "3e1" and "0x1E" all equal 30.
	Loose Matcher = MatcherFunc(looseEqual)

	// Strict only accepts the exact decimal text of the target or an int
	// equal to it.
	Strict Matcher = MatcherFunc(strictEqual)
)

// ParseMatcher returns the matcher for a comparison rule name.
// An empty name selects Loose.
func ParseMatcher(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ComparisonLoose:
		return Loose, nil
	case ComparisonStrict:
		return Strict, nil
	default:
		return nil, fmt.Errorf("unknown comparison %q: want %q or %q", name, ComparisonLoose, ComparisonStrict)
	}
}

func looseEqual(target int, input any) bool {
	n, ok := ToNumber(input)
	if !ok {
		return false
	}
	return n == float64(target)
}

func strictEqual(target int, input any) bool {
	switch v := input.(type) {
	case string:
		return v == strconv.Itoa(target)
	case int:
		return v == target
	default:
		return false
	}
}

// ToNumber converts a primitive to a float64 using coercive rules.
// The boolean is false when the value has no numeric reading (NaN),
// which never equals any target.
//
// Strings are trimmed of surrounding white space; the empty string is 0;
// decimal literals may carry a sign, fraction and exponent; 0x, 0o and 0b
// prefixes select hexadecimal, octal and binary integers without a sign;
// "Infinity" with an optional sign is accepted. Booleans map to 1 and 0.
// nil and every other type are not numbers.
func ToNumber(input any) (float64, bool) {
	switch v := input.(type) {
	case nil:
		return 0, false
	case string:
		return stringToNumber(v)
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return finite(float64(v))
	case float64:
		return finite(v)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

func isNumericSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func stringToNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isNumericSpace)
	if s == "" {
		return 0, true
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	if len(s) > 2 && s[0] == '0' {
		if base := radixPrefix(s[1]); base != 0 {
			return radixToNumber(s[2:], base)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out-of-range literals still have a value: ParseFloat returns
		// ±Inf or ±0 alongside ErrRange.
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

func radixPrefix(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}

func radixToNumber(digits string, base int) (float64, bool) {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, false
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, false
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f, true
}

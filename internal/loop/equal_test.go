package loop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"decimal text", "30", true},
		{"int", 30, true},
		{"int64", int64(30), true},
		{"uint8", uint8(30), true},
		{"float", 30.0, true},
		{"float32", float32(30), true},
		{"surrounding white space", " \t30\n", true},
		{"non-breaking space", "\u00a030\u00a0", true},
		{"byte order mark", "\ufeff30", true},
		{"explicit plus", "+30", true},
		{"leading zero", "030", true},
		{"fraction", "30.0", true},
		{"trailing dot", "30.", true},
		{"exponent", "3e1", true},
		{"upper exponent", "0.3E2", true},
		{"hex", "0x1E", true},
		{"upper hex", "0X1e", true},
		{"octal", "0o36", true},
		{"binary", "0b11110", true},
		{"wrong number", "10", false},
		{"non-numeric", "abc", false},
		{"trailing garbage", "30abc", false},
		{"inner space", "3 0", false},
		{"signed hex", "-0x1E", false},
		{"empty prefix", "0x", false},
		{"bad hex digit", "0x1G", false},
		{"underscore", "3_0", false},
		{"go float syntax", "0x1.ep4", false},
		{"fractional", "30.5", false},
		{"nil", nil, false},
		{"true", true, false},
		{"slice", []int{30}, false},
		{"nan", math.NaN(), false},
		{"infinity", "Infinity", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Loose.Match(30, tt.input))
		})
	}
}

func TestLooseMatchSmallTargets(t *testing.T) {
	t.Parallel()

	assert.True(t, Loose.Match(0, ""), "empty text coerces to zero")
	assert.True(t, Loose.Match(0, "   "), "blank text coerces to zero")
	assert.True(t, Loose.Match(0, "-0"))
	assert.True(t, Loose.Match(1, true))
	assert.True(t, Loose.Match(0, false))
	assert.False(t, Loose.Match(0, nil), "nil is never a number")
	assert.True(t, Loose.Match(-7, "-7"))
	assert.True(t, Loose.Match(-7, " -7e0 "))
}

func TestStrictMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"exact text", "30", true},
		{"int", 30, true},
		{"padded", " 30", false},
		{"fraction", "30.0", false},
		{"hex", "0x1E", false},
		{"plus sign", "+30", false},
		{"float", 30.0, false},
		{"int64", int64(30), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Strict.Match(30, tt.input))
		})
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input any
		want  float64
		ok    bool
	}{
		{"", 0, true},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"infinity", 0, false},
		{"NaN", 0, false},
		{".5", 0.5, true},
		{"0xFFFFFFFFFFFFFFFFFF", 4722366482869645213696, true},
		{struct{}{}, 0, false},
	}

	for _, tt := range tests {
		got, ok := ToNumber(tt.input)
		assert.Equal(t, tt.ok, ok, "input %#v", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %#v", tt.input)
		}
	}
}

func TestParseMatcher(t *testing.T) {
	t.Parallel()

	m, err := ParseMatcher("")
	require.NoError(t, err)
	assert.True(t, m.Match(30, "30.0"))

	m, err = ParseMatcher("LOOSE")
	require.NoError(t, err)
	assert.True(t, m.Match(30, " 30"))

	m, err = ParseMatcher(ComparisonStrict)
	require.NoError(t, err)
	assert.False(t, m.Match(30, "30.0"))

	_, err = ParseMatcher("fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown comparison")
}

func TestMatcherFunc(t *testing.T) {
	t.Parallel()

	always := MatcherFunc(func(int, any) bool { return true })
	assert.True(t, always.Match(30, "anything"))
}

package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompt(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := NewLine(strings.NewReader("10\n 30 \r\n"), &out)

	first, err := p.Prompt("Guess the number")
	require.NoError(t, err)
	assert.Equal(t, "10", first)

	second, err := p.Prompt("Wrong, try again")
	require.NoError(t, err)
	assert.Equal(t, " 30 ", second, "only the line terminator is stripped")

	assert.Equal(t, "Guess the number: \nWrong, try again: \n", out.String())
}

func TestLinePromptFinalLineWithoutNewline(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader("abc\n30"), io.Discard)

	input, err := p.Prompt("guess")
	require.NoError(t, err)
	assert.Equal(t, "abc", input)

	input, err = p.Prompt("guess")
	require.NoError(t, err)
	assert.Equal(t, "30", input)

	_, err = p.Prompt("guess")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePromptEmptyInput(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader(""), io.Discard)

	_, err := p.Prompt("guess")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLinePromptBlankLine(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader("\n"), io.Discard)

	input, err := p.Prompt("guess")
	require.NoError(t, err)
	assert.Equal(t, "", input)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestLinePromptWriteError(t *testing.T) {
	t.Parallel()

	p := NewLine(strings.NewReader("30\n"), failingWriter{})

	_, err := p.Prompt("guess")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write prompt")
}

func TestScripted(t *testing.T) {
	t.Parallel()

	s := NewScripted("10", "30")
	assert.Equal(t, 2, s.Remaining())

	input, err := s.Prompt("first")
	require.NoError(t, err)
	assert.Equal(t, "10", input)

	input, err = s.Prompt("retry")
	require.NoError(t, err)
	assert.Equal(t, "30", input)

	_, err = s.Prompt("retry")
	assert.ErrorIs(t, err, ErrScriptExhausted)

	assert.Equal(t, []string{"first", "retry", "retry"}, s.Messages())
	assert.Equal(t, 3, s.Calls())
	assert.Equal(t, 0, s.Remaining())
}

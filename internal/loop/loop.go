package loop

import (
	"errors"
	"fmt"
	"io"

	"github.com/thruflo/guess/internal/logging"
)

// ErrAlreadyDone is returned by Run when the loop has already matched its target.
var ErrAlreadyDone = errors.New("loop already done")

// State is the lifecycle position of a Loop.
type State int

const (
	StateWaiting State = iota // Prompting for guesses
	StateDone                 // Target matched and success announced
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Prompter asks the user for a single value and blocks until one arrives.
type Prompter interface {
	Prompt(message string) (string, error)
}

// Messages holds the text a Loop shows.
type Messages struct {
	First   string // Shown for the first prompt
	Retry   string // Shown for every prompt after a wrong guess
	Success string // Written to the output once the target is matched
}

// Default messages.
const (
	DefaultFirstMessage   = "Guess the number"
	DefaultRetryMessage   = "Wrong, try again"
	DefaultSuccessMessage = "You got it!"
)

// DefaultMessages returns the messages used when none are configured.
func DefaultMessages() Messages {
	return Messages{
		First:   DefaultFirstMessage,
		Retry:   DefaultRetryMessage,
		Success: DefaultSuccessMessage,
	}
}

// withDefaults fills empty fields from DefaultMessages.
func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.First == "" {
		m.First = d.First
	}
	if m.Retry == "" {
		m.Retry = d.Retry
	}
	if m.Success == "" {
		m.Success = d.Success
	}
	return m
}

// Result contains the outcome of a loop execution.
type Result struct {
	Attempts int    // Number of guesses read, including the matching one
	Accepted string // The guess that matched the target
}

// LoopOptions holds configuration for creating a Loop instance.
type LoopOptions struct {
	Target   int
	Prompter Prompter
	Output   io.Writer       // Console sink for the success message
	Matcher  Matcher         // Optional: defaults to Loose
	Messages Messages        // Optional: empty fields use DefaultMessages
	Logger   *logging.Logger // Optional: defaults to the package logger
}

// Loop repeatedly prompts for a guess until it equals the target.
type Loop struct {
	target   int
	prompter Prompter
	output   io.Writer
	matcher  Matcher
	messages Messages
	logger   *logging.Logger
	state    State
	attempts int
}

// NewLoop creates a Loop with loose comparison and default messages.
func NewLoop(target int, prompter Prompter, output io.Writer) *Loop {
	return NewLoopWithOptions(LoopOptions{
		Target:   target,
		Prompter: prompter,
		Output:   output,
	})
}

// NewLoopWithOptions creates a Loop from explicit options.
func NewLoopWithOptions(opts LoopOptions) *Loop {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = Loose
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.With("component", "loop")
	}
	output := opts.Output
	if output == nil {
		output = io.Discard
	}

	return &Loop{
		target:   opts.Target,
		prompter: opts.Prompter,
		output:   output,
		matcher:  matcher,
		messages: opts.Messages.withDefaults(),
		logger:   logger.With("target", opts.Target),
		state:    StateWaiting,
	}
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Attempts returns the number of guesses read so far.
func (l *Loop) Attempts() int {
	return l.attempts
}

// Run prompts until a guess matches the target, then writes the success
// message. Wrong guesses never end the loop. The only error paths are a
// prompter that can no longer produce input and a failing output writer.
func (l *Loop) Run() (Result, error) {
	if l.state == StateDone {
		return Result{Attempts: l.attempts}, ErrAlreadyDone
	}

	message := l.messages.First
	var input string
	for {
		var err error
		input, err = l.prompter.Prompt(message)
		if err != nil {
			l.logger.Warn("prompt failed", "attempt", l.attempts+1, "error", err)
			return Result{Attempts: l.attempts}, fmt.Errorf("failed to read guess: %w", err)
		}
		l.attempts++

		if l.matcher.Match(l.target, input) {
			l.logger.Debug("guess matched", "attempt", l.attempts, "input", input)
			break
		}
		l.logger.Debug("guess rejected", "attempt", l.attempts, "input", input)
		message = l.messages.Retry
	}

	l.state = StateDone
	l.logger.Info("target matched", "attempts", l.attempts)

	result := Result{Attempts: l.attempts, Accepted: input}
	if _, err := fmt.Fprintln(l.output, l.messages.Success); err != nil {
		return result, fmt.Errorf("failed to write success message: %w", err)
	}
	return result, nil
}

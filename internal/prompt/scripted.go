package prompt

import (
	"errors"
	"sync"
)

// ErrScriptExhausted is returned once a Scripted prompter has no inputs left.
var ErrScriptExhausted = errors.New("prompt script exhausted")

// Scripted is a prompter that replays a fixed list of inputs and records
// every message it was asked to show. It is exported for tests in other
// packages.
type Scripted struct {
	mu       sync.Mutex
	inputs   []string
	next     int
	messages []string
}

// NewScripted creates a Scripted prompter answering with inputs in order.
func NewScripted(inputs ...string) *Scripted {
	return &Scripted{inputs: inputs}
}

// Prompt records message and returns the next scripted input.
func (s *Scripted) Prompt(message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, message)
	if s.next >= len(s.inputs) {
		return "", ErrScriptExhausted
	}
	input := s.inputs[s.next]
	s.next++
	return input, nil
}

// Messages returns the messages shown so far, in order.
func (s *Scripted) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Calls returns how many times Prompt was called.
func (s *Scripted) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// Remaining returns the number of unread inputs.
func (s *Scripted) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inputs) - s.next
}

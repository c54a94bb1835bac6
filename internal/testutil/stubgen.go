package testutil

import "context"

// StubGenerator returns a canned response (or error) and records the
// prompts it was called with.
type StubGenerator struct {
	Response string
	Err      error

	Calls         int
	SystemPrompts []string
	UserPrompts   []string
}

func (s *StubGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.Calls++
	s.SystemPrompts = append(s.SystemPrompts, systemPrompt)
	s.UserPrompts = append(s.UserPrompts, userPrompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

func (s *StubGenerator) Available(ctx context.Context) bool { return true }

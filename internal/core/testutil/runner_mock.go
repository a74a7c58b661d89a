package testutil

import "errors"

// MockRunner is a mock implementation of ports.Runner for testing.
// It records every execution so tests can assert on what would have run.
type MockRunner struct {
	RunFunc func(path string, args []string) (int, error)
	Calls   []RunnerCall
}

// RunnerCall captures one Run invocation.
type RunnerCall struct {
	Path string
	Args []string
}

func (m *MockRunner) Run(path string, args []string) (int, error) {
	m.Calls = append(m.Calls, RunnerCall{Path: path, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(path, args)
	}
	return 0, errors.New("MockRunner: RunFunc not implemented")
}

package testutil

import "errors"

// MockSymlinker is a mock implementation of ports.Symlinker for testing.
type MockSymlinker struct {
	CreateFunc  func(target, link string) error
	ResolveFunc func(link string) (string, error)
	RemoveFunc  func(link string) error
	ProbeFunc   func(link string) (bool, bool, error)
}

func (m *MockSymlinker) Create(target, link string) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(target, link)
	}
	return errors.New("MockSymlinker: CreateFunc not implemented")
}

func (m *MockSymlinker) Resolve(link string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(link)
	}
	return "", errors.New("MockSymlinker: ResolveFunc not implemented")
}

func (m *MockSymlinker) Remove(link string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(link)
	}
	return errors.New("MockSymlinker: RemoveFunc not implemented")
}

func (m *MockSymlinker) Probe(link string) (bool, bool, error) {
	if m.ProbeFunc != nil {
		return m.ProbeFunc(link)
	}
	return false, false, errors.New("MockSymlinker: ProbeFunc not implemented")
}

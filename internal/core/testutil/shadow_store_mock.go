package testutil

import (
	"errors"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
)

// MockShadowStore is a mock implementation of ports.ShadowStore for testing.
type MockShadowStore struct {
	LoadFunc func() (shadow.StoreState, error)
	SaveFunc func(state shadow.StoreState) error
	PathFunc func() string
}

func (m *MockShadowStore) Load() (shadow.StoreState, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return shadow.StoreState{}, errors.New("MockShadowStore: LoadFunc not implemented")
}

func (m *MockShadowStore) Save(state shadow.StoreState) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(state)
	}
	return errors.New("MockShadowStore: SaveFunc not implemented")
}

func (m *MockShadowStore) Path() string {
	if m.PathFunc != nil {
		return m.PathFunc()
	}
	return "/mock/shadows.yaml"
}

package testutil

import (
	"github.com/stretchr/testify/mock"

	"mapkeep/pkg/conflict"
	"mapkeep/pkg/naming"
)

// Compile-time interface compliance check
var _ naming.Prompter = (*MockPrompter)(nil)

// MockPrompter provides a testify mock for naming.Prompter.
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) ReadName(files []string) (string, error) {
	args := m.Called(files)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Choose(prompt string, options []conflict.Option) (string, error) {
	args := m.Called(prompt, options)
	return args.String(0), args.Error(1)
}

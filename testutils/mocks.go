package testutils

import (
	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(content string) (string, error) {
	args := m.Called(content)
	return args.String(0), args.Error(1)
}

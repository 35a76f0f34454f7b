package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMigrator struct {
	mock.Mock
}

func (m *mockMigrator) Up() error         { return m.Called().Error(0) }
func (m *mockMigrator) Down() error       { return m.Called().Error(0) }
func (m *mockMigrator) Steps(n int) error { return m.Called(n).Error(0) }

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		steps     int
		setup     func(m *mockMigrator)
		wantErr   bool
	}{
		{name: "up all", direction: "up", setup: func(m *mockMigrator) { m.On("Up").Return(nil) }},
		{name: "up steps", direction: "up", steps: 1, setup: func(m *mockMigrator) { m.On("Steps", 1).Return(nil) }},
		{name: "down all", direction: "down", setup: func(m *mockMigrator) { m.On("Down").Return(nil) }},
		{name: "down steps", direction: "down", steps: 2, setup: func(m *mockMigrator) { m.On("Steps", -2).Return(nil) }},
		{name: "unknown direction", direction: "sideways", setup: func(*mockMigrator) {}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockMigrator)
			tt.setup(m)

			err := apply(m, tt.direction, tt.steps)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			m.AssertExpectations(t)
		})
	}
}

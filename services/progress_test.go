package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		active    []uint
		completed []uint
		want      int
	}{
		{name: "no active materials", active: nil, completed: []uint{1, 2}, want: 0},
		{name: "nothing completed", active: []uint{1, 2, 3}, completed: nil, want: 0},
		{name: "one of four", active: []uint{1, 2, 3, 4}, completed: []uint{1}, want: 25},
		{name: "all completed", active: []uint{1, 2, 3}, completed: []uint{1, 2, 3}, want: 100},
		{name: "one of three rounds up", active: []uint{1, 2, 3}, completed: []uint{1}, want: 33},
		{name: "two of three rounds up", active: []uint{1, 2, 3}, completed: []uint{1, 2}, want: 67},
		{name: "half of six", active: []uint{1, 2, 3, 4, 5, 6}, completed: []uint{1, 2, 3}, want: 50},
		{name: "one of eight rounds half up", active: []uint{1, 2, 3, 4, 5, 6, 7, 8}, completed: []uint{1}, want: 13},
		{name: "completions outside active set ignored", active: []uint{1, 2}, completed: []uint{3, 4, 5}, want: 0},
		{name: "duplicate active ids counted once", active: []uint{1, 1, 2}, completed: []uint{1}, want: 50},
		{name: "duplicate completed ids counted once", active: []uint{1, 2}, completed: []uint{1, 1, 1}, want: 50},
		{name: "extra completions never exceed 100", active: []uint{1}, completed: []uint{1, 2, 3}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeProgressPercent(tt.active, tt.completed))
		})
	}
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteCommand(t *testing.T) {
	tests := []struct {
		line string
		want string
		ok   bool
	}{
		{"tou", "touch ", true},
		{"gi", "git ", true},
		{"git com", "git commit ", true},
		{"git  sta", "git  status ", true},
		{"git re", "git re", false},
		{"git rem", "git remote ", true},
		{"c", "c", false},
		{"ca", "cat ", true},
		{"git commit -m", "", false},
		{"xyz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			line, pos, ok := completeCommand(tt.line, len(tt.line), '\t')
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, line)
				assert.Equal(t, len(line), pos)
			}
		})
	}

	t.Run("only tab at end of line", func(t *testing.T) {
		_, _, ok := completeCommand("tou", 3, 'x')
		assert.False(t, ok)
		_, _, ok = completeCommand("tou", 1, '\t')
		assert.False(t, ok)
	})
}

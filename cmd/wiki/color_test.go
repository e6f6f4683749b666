package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     string
		noColor  bool
		terminal bool
		want     bool
	}{
		{mode: "auto", terminal: true, want: true},
		{mode: "auto", terminal: true, noColor: true, want: false},
		{mode: "auto", terminal: false, want: false},
		{mode: "always", terminal: false, noColor: true, want: true},
		{mode: "never", terminal: true, want: false},
	}
	for _, tt := range tests {
		got := resolveColor(tt.mode, tt.noColor, tt.terminal)
		assert.Equal(t, tt.want, got, "mode=%s noColor=%v terminal=%v", tt.mode, tt.noColor, tt.terminal)
	}
}

func TestColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, colorEnabled("auto", &bytes.Buffer{}))
	assert.True(t, colorEnabled("always", &bytes.Buffer{}))
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

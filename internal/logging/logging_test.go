package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("write failed", "key", "minecraft-votes")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "write failed")
	assert.Contains(t, out, "minecraft-votes")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "shouty")
	assert.Error(t, err)
}

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spaghettifunk/c3d/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintOutputSampleScene(t *testing.T) {
	s, err := scene.Load("testdata/scene.toml")
	require.NoError(t, err)

	var buf bytes.Buffer
	printOutput(&buf, s.Evaluate())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "projection matrix3d("))
	assert.True(t, strings.HasPrefix(lines[1], "stage transform: matrix3d("))
	assert.True(t, strings.HasPrefix(lines[3], "badge transform: matrix3d("))
	assert.True(t, strings.HasPrefix(lines[4], "tooltip transform: matrix("))
	assert.NotContains(t, buf.String(), "e-")
}

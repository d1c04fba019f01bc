package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asciiRenderer() *TerminalRenderer {
	var buf bytes.Buffer
	return newTerminalRenderer(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii)))
}

func TestFrameLayout(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)
	board.Set(2, 2, true)

	frame := asciiRenderer().Frame(board, "Gen: 0 | Living: 1")
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")

	// Border, eight cell rows, border, status.
	require.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[0], "Game of Life")
	assert.True(t, strings.HasPrefix(lines[9], "└"))
	assert.Equal(t, "Gen: 0 | Living: 1", lines[10])

	for _, row := range lines[1:9] {
		assert.True(t, strings.HasPrefix(row, "│"))
		assert.True(t, strings.HasSuffix(row, "│"))
	}

	// The single live cell renders on the third row, and only there.
	assert.Contains(t, lines[3], "■")
	assert.NotContains(t, lines[2], "■")
	assert.NotContains(t, lines[4], "■")
}

func TestFrameTitleOmittedOnNarrowBoards(t *testing.T) {
	board, err := NewBoard(3)
	require.NoError(t, err)

	frame := asciiRenderer().Frame(board, "status")
	assert.NotContains(t, frame, "Game of Life")
}

package journal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	var buf bytes.Buffer
	j := New(&buf, "run-1")

	j.Record("song", "Song Name: The Sign")
	j.Record("song", "Artist Name: Ace of Base")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `msg="Song Name: The Sign"`)
	assert.Contains(t, lines[0], "event=song")
	assert.Contains(t, lines[0], "run=run-1")
	assert.Contains(t, lines[1], `msg="Artist Name: Ace of Base"`)
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "").Failure("movie", errors.New("omdb down"))

	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), `error="omdb down"`)
	assert.NotContains(t, buf.String(), "run=")
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	first, err := Open(path, "a")
	require.NoError(t, err)
	first.Record("movie", "Title: Mr. Nobody")
	require.NoError(t, first.Close())

	second, err := Open(path, "b")
	require.NoError(t, err)
	second.Record("movie", "Title: Heat")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Title: Mr. Nobody")
	assert.Contains(t, string(data), "Title: Heat")
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

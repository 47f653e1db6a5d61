package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/liri/internal/domain"
)

// setup isolates config, log and journal files and returns a stdin file
// holding the given answers.
func setup(t *testing.T, answers string) (dir string, stdin *os.File) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("LIRI_LOGGING_FILE", filepath.Join(dir, "liri.log"))

	path := filepath.Join(dir, "stdin.txt")
	require.NoError(t, os.WriteFile(path, []byte(answers), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return dir, f
}

func TestRunMovieThis(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Mr. Nobody.", r.URL.Query().Get("t"))
		w.Write([]byte(`{"Title":"Mr. Nobody","Year":"2009","imdbRating":"7.8","Ratings":[{"Source":"Internet Movie Database","Value":"7.8/10"}],"Response":"True"}`))
	}))
	defer server.Close()

	dir, stdin := setup(t, "movie-this\n\n")
	t.Setenv("LIRI_MOVIE_BASE_URL", server.URL+"/")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), stdin, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "Title: Mr. Nobody")
	assert.Contains(t, stdout.String(), "Rotten Tomatoes Rating: N/A")

	journal, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(journal), "Title: Mr. Nobody")
	assert.Contains(t, string(journal), "Rotten Tomatoes Rating: N/A")
}

func TestRunStoredQueryMissingFile(t *testing.T) {
	dir, stdin := setup(t, "4\n")
	t.Setenv("SPOTIFY_ID", "id")
	t.Setenv("SPOTIFY_SECRET", "secret")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), stdin, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, domain.ExitDataSource, domain.ExitCode(err))
	assert.Contains(t, stdout.String(), "random.txt")

	journal, readErr := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, readErr)
	assert.Contains(t, string(journal), "level=error")
}

func TestRunUnknownSelection(t *testing.T) {
	_, stdin := setup(t, "play-jazz\n")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), stdin, &stdout, &stderr)

	assert.Equal(t, domain.ExitUnknownSelection, domain.ExitCode(err))
}

func TestRunMissingCredentials(t *testing.T) {
	_, stdin := setup(t, "my-tweets\n")
	t.Setenv("TWITTER_BEARER_TOKEN", "")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), stdin, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(err))
	assert.Contains(t, err.Error(), "bearer token")
}

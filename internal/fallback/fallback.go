// Package fallback reads the stored song query used by the do-what-it-says action.
package fallback

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/mmcdole/liri/internal/domain"
)

// queryField is the comma-delimited field holding the song query
const queryField = 1

// ReadQuery reads path and returns its second comma-delimited field,
// trimmed of surrounding whitespace and double quotes.
func ReadQuery(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := "cannot read file"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "file not found"
		}
		return "", &domain.DataSourceError{Path: path, Reason: reason, Err: err}
	}

	return ParseQuery(path, string(data))
}

// ParseQuery extracts the song query from the fallback file contents
func ParseQuery(path, content string) (string, error) {
	fields := strings.Split(content, ",")
	if len(fields) <= queryField {
		return "", &domain.DataSourceError{Path: path, Reason: "expected at least two comma-separated fields"}
	}

	query := strings.Trim(strings.TrimSpace(fields[queryField]), `"`)
	query = strings.TrimSpace(query)
	if query == "" {
		return "", &domain.DataSourceError{Path: path, Reason: "song query field is empty"}
	}

	return query, nil
}

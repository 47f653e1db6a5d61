// Package journal is the append-only record of everything liri presents.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Journal writes one human-readable line per presented field.
// The underlying file is only ever appended to.
type Journal struct {
	logger *logrus.Logger
	runID  string
	closer io.Closer
}

// Open opens (or creates) the journal file for appending
func Open(path, runID string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	j := New(f, runID)
	j.closer = f
	return j, nil
}

// New creates a journal writing to w
func New(w io.Writer, runID string) *Journal {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
	})

	return &Journal{logger: logger, runID: runID}
}

// Record appends one line for the given event
func (j *Journal) Record(event, line string) {
	j.entry(event).Info(line)
}

// Failure appends an error line for the given event
func (j *Journal) Failure(event string, err error) {
	j.entry(event).WithError(err).Error("action failed")
}

func (j *Journal) entry(event string) *logrus.Entry {
	fields := logrus.Fields{"event": event}
	if j.runID != "" {
		fields["run"] = j.runID
	}
	return j.logger.WithFields(fields)
}

// Close closes the journal file, if any
func (j *Journal) Close() error {
	if j.closer != nil {
		return j.closer.Close()
	}
	return nil
}

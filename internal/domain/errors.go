package domain

import (
	"errors"
	"fmt"
)

// ErrAborted indicates the user cancelled a prompt
var ErrAborted = errors.New("aborted by user")

// RemoteAPIError is a transport or authentication failure from a remote service
type RemoteAPIError struct {
	Service    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *RemoteAPIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Service, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
}

func (e *RemoteAPIError) Unwrap() error { return e.Err }

// NoMatchError means a search returned zero results
type NoMatchError struct {
	Service string
	Query   string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s: no match for %q", e.Service, e.Query)
}

// MalformedResponseError means a response body could not be parsed or lacks required fields
type MalformedResponseError struct {
	Service string
	Reason  string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s returned a malformed response: %s: %v", e.Service, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s returned a malformed response: %s", e.Service, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// DataSourceError means the local fallback file is missing or unusable
type DataSourceError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fallback file %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("fallback file %s: %s", e.Path, e.Reason)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// UnknownSelectionError means the chosen menu option is not one of the defined actions
type UnknownSelectionError struct {
	Input string
}

func (e *UnknownSelectionError) Error() string {
	return fmt.Sprintf("no right option: %q", e.Input)
}

// Exit codes reported by the command
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitUnknownSelection = 2
	ExitRemoteAPI        = 3
	ExitNoMatch          = 4
	ExitMalformed        = 5
	ExitDataSource       = 6
	ExitAborted          = 130
)

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var (
		remoteErr    *RemoteAPIError
		noMatchErr   *NoMatchError
		malformedErr *MalformedResponseError
		dataErr      *DataSourceError
		selectionErr *UnknownSelectionError
	)

	switch {
	case errors.Is(err, ErrAborted):
		return ExitAborted
	case errors.As(err, &selectionErr):
		return ExitUnknownSelection
	case errors.As(err, &noMatchErr):
		return ExitNoMatch
	case errors.As(err, &malformedErr):
		return ExitMalformed
	case errors.As(err, &dataErr):
		return ExitDataSource
	case errors.As(err, &remoteErr):
		return ExitRemoteAPI
	default:
		return ExitFailure
	}
}

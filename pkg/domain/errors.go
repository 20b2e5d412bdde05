package domain

import (
	"errors"
	"fmt"
)

// sentinel errors surfaced to callers
var (
	// ErrNotFound indicates a missing article, bookmark or source
	ErrNotFound = errors.New("not found")
	// ErrDuplicateBookmark indicates an attempt to bookmark an already bookmarked article
	ErrDuplicateBookmark = errors.New("bookmark already exists")
)

// SourceUnreachableError indicates a feed endpoint could not be reached.
// Recoverable: the scheduler retries on the next tick.
type SourceUnreachableError struct {
	URL string
	Err error
}

func (e *SourceUnreachableError) Error() string {
	return fmt.Sprintf("source unreachable %s: %v", e.URL, e.Err)
}

func (e *SourceUnreachableError) Unwrap() error { return e.Err }

// MalformedFeedError indicates a feed was fetched but could not be parsed.
// Recoverable: the scheduler retries on the next tick.
type MalformedFeedError struct {
	URL string
	Err error
}

func (e *MalformedFeedError) Error() string {
	return fmt.Sprintf("malformed feed %s: %v", e.URL, e.Err)
}

func (e *MalformedFeedError) Unwrap() error { return e.Err }

// AIErrorKind classifies AI boundary failures
type AIErrorKind string

// AI boundary failure kinds
const (
	AIErrTimeout   AIErrorKind = "timeout"   // deadline exceeded, retryable
	AIErrRejected  AIErrorKind = "rejected"  // quota or API rejection
	AIErrMalformed AIErrorKind = "malformed" // empty or unparseable response
)

// AIError is a typed failure from the external completion boundary. The
// conversation engine surfaces it to the caller without corrupting stored
// history.
type AIError struct {
	Kind AIErrorKind
	Err  error
}

func (e *AIError) Error() string {
	return fmt.Sprintf("ai boundary %s: %v", e.Kind, e.Err)
}

func (e *AIError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is transient
func (e *AIError) Retryable() bool { return e.Kind == AIErrTimeout }

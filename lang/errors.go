package lang

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey reports a path segment that is not present.
	ErrMissingKey = errors.New("missing key")
	// ErrNotMapping reports a path segment that does not hold a mapping.
	ErrNotMapping = errors.New("not a mapping")
	// ErrNotCallable reports a method name that does not resolve to a function.
	ErrNotCallable = errors.New("not callable")
)

// PathError describes where a dotted path stopped resolving.
type PathError struct {
	// Path is the full path that was requested.
	Path string
	// Segment is the segment that failed.
	Segment string
	// Index is the position of Segment within the path.
	Index int
	// Keys lists the keys, own and inherited, available where Segment was looked up.
	// It is empty when the failure was ErrNotMapping.
	Keys []string
	// Err is ErrMissingKey or ErrNotMapping.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: segment %q: %v", e.Path, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// Package dotpath splits and validates dot-separated property paths such as
// "server.tls.cert".
package dotpath

import (
	"errors"
	"fmt"
	"strings"
)

// Path is a property path broken into its segments.
type Path []string

// ErrEmptyPath is returned by Parse for an empty input.
var ErrEmptyPath = errors.New("empty path")

// Split breaks s on dots without any validation.
// Empty segments are kept, so "a..b" addresses the key "" under "a".
func Split(s string) Path {
	return Path(strings.Split(s, "."))
}

// Parse splits s and rejects empty paths and empty segments.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, ErrEmptyPath
	}

	var segments Path

	for part := range strings.SplitSeq(s, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", s)
		}

		if strings.TrimSpace(part) != part {
			return nil, fmt.Errorf("invalid path %q: segment %q has surrounding spaces", s, part)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

// String joins the segments back with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Parent returns every segment but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}

	return p[:len(p)-1]
}

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Prefix returns the path up to and including segment i.
func (p Path) Prefix(i int) Path {
	if i < 0 {
		return nil
	}

	if i >= len(p) {
		return p
	}

	return p[:i+1]
}

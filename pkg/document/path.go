package document

import (
	"strconv"
	"strings"
)

// KeySeparator joins path segments into a field path key.
const KeySeparator = "."

// Path is an ordered sequence of traversal segments. Object segments are
// literal keys; array segments use the literal form "[index]".
type Path []string

// Key returns the canonical dot-joined form of the path, e.g. "images.[0]".
// Identical traversals always yield identical keys.
func (p Path) Key() string {
	return strings.Join(p, KeySeparator)
}

// Child returns a new path extended by one segment. The receiver is not
// modified and does not share backing storage with the result.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = segment
	return child
}

// Parent returns the path without its final segment, and that segment.
// The zero path returns itself and an empty segment.
func (p Path) Parent() (Path, string) {
	if len(p) == 0 {
		return p, ""
	}
	return p[:len(p)-1], p[len(p)-1]
}

// ParseKey splits a dot-joined field path key back into segments.
func ParseKey(key string) Path {
	if key == "" {
		return nil
	}
	return Path(strings.Split(key, KeySeparator))
}

// IndexSegment returns the path segment form of an array index.
func IndexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// ParseIndexSegment parses a "[index]" segment. It reports false for
// segments that are not in array-index form.
func ParseIndexSegment(segment string) (int, bool) {
	if len(segment) < 3 || segment[0] != '[' || segment[len(segment)-1] != ']' {
		return 0, false
	}
	i, err := strconv.Atoi(segment[1 : len(segment)-1])
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

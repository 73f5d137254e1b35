package codable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidPath = errors.New("invalid coding path")

// Path locates a value inside a nested structure by its coding keys.
// The root value has an empty path.
type Path []string

// Append returns a new path extended by key. The receiver is never modified,
// so paths can be shared between sibling containers.
func (p Path) Append(key string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, key)
}

// Equal reports whether both paths have the same segments in the same order.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Depth is the nesting level of the value the path points at, root children being 0.
func (p Path) Depth() int {
	return len(p) - 1
}

// String joins segments with dots: "address.city".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// ParsePath parses a dotted path such as "address.city" into a Path.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segments Path

	for part := range strings.SplitSeq(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w %q: empty segment", ErrInvalidPath, path)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

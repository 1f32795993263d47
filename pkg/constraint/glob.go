package constraint

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/getfaked/faked/pkg/callspec"
)

// glob accepts string values matching a glob pattern.
type glob struct {
	pattern string
}

// Glob returns a constraint matched by string arguments that satisfy the
// glob pattern, e.g. "user-*" or "orders/**/pending". Non-string arguments
// never match unless they implement fmt.Stringer.
func Glob(pattern string) callspec.Constraint {
	return glob{pattern: pattern}
}

func (c glob) Matches(value any) bool {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		return false
	}

	ok, err := doublestar.Match(c.pattern, s)
	return err == nil && ok
}

func (c glob) String() string {
	return fmt.Sprintf("<glob %q>", c.pattern)
}

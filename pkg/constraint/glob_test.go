package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getfaked/faked/pkg/constraint"
)

func TestGlob(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		value   any
		want    bool
	}{
		{name: "star suffix", pattern: "user-*", value: "user-42", want: true},
		{name: "star suffix mismatch", pattern: "user-*", value: "admin-1", want: false},
		{name: "exact", pattern: "exact", value: "exact", want: true},
		{name: "doublestar crosses separators", pattern: "orders/**", value: "orders/2026/08/123", want: true},
		{name: "single star stops at separator", pattern: "orders/*", value: "orders/2026/08", want: false},
		{name: "question mark", pattern: "v?", value: "v2", want: true},
		{name: "non-string argument", pattern: "*", value: 42, want: false},
		{name: "nil argument", pattern: "*", value: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraint.Glob(tt.pattern).Matches(tt.value))
		})
	}
}

func TestGlobString(t *testing.T) {
	assert.Equal(t, `<glob "user-*">`, constraint.Glob("user-*").String())
}

package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getfaked/faked/pkg/callspec"
	"github.com/getfaked/faked/pkg/constraint"
)

func TestExact(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		value    any
		want     bool
	}{
		{name: "equal ints", expected: 5, value: 5, want: true},
		{name: "different ints", expected: 5, value: 6, want: false},
		{name: "different types", expected: 5, value: "5", want: false},
		{name: "equal strings", expected: "x", value: "x", want: true},
		{name: "nil equals nil", expected: nil, value: nil, want: true},
		{name: "nil vs value", expected: nil, value: 0, want: false},
		{name: "deep slice equality", expected: []int{1, 2}, value: []int{1, 2}, want: true},
		{name: "deep map equality", expected: map[string]int{"a": 1}, value: map[string]int{"a": 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraint.Exact(tt.expected).Matches(tt.value))
		})
	}
}

func TestExactString(t *testing.T) {
	assert.Equal(t, "5", constraint.Exact(5).String())
	assert.Equal(t, `"x"`, constraint.Exact("x").String())
	assert.Equal(t, "<nil>", constraint.Exact(nil).String())
}

func TestAny(t *testing.T) {
	c := constraint.Any()
	assert.True(t, c.Matches(5))
	assert.True(t, c.Matches(nil))
	assert.True(t, c.Matches(struct{ X int }{1}))
	assert.Equal(t, callspec.TokenAny, c.String())
}

func TestPred(t *testing.T) {
	c := constraint.Pred(func(v any) bool {
		n, ok := v.(int)
		return ok && n > 10
	})
	assert.True(t, c.Matches(11))
	assert.False(t, c.Matches(10))
	assert.False(t, c.Matches("11"))
	assert.Equal(t, callspec.TokenPredicated, c.String())
}

func TestBuilderDefaultDispatch(t *testing.T) {
	builder := constraint.NewBuilder()

	tests := []struct {
		name    string
		node    callspec.ArgNode
		value   any
		want    bool
		wantStr string
	}{
		{name: "literal", node: callspec.Lit(5), value: 5, want: true, wantStr: "5"},
		{name: "literal mismatch", node: callspec.Lit(5), value: 6, want: false, wantStr: "5"},
		{name: "any", node: callspec.AnyArg(), value: "whatever", want: true, wantStr: callspec.TokenAny},
		{
			name:    "predicate",
			node:    callspec.PredArg(func(v any) bool { return v == "ok" }),
			value:   "ok",
			want:    true,
			wantStr: callspec.TokenPredicated,
		},
		{
			name:    "nil predicate never matches",
			node:    callspec.ArgNode{Kind: callspec.ArgPredicate},
			value:   "ok",
			want:    false,
			wantStr: callspec.TokenPredicated,
		},
		{
			name:    "expr",
			node:    callspec.ExprArg("value > 2"),
			value:   3,
			want:    true,
			wantStr: `<expr "value > 2">`,
		},
		{
			name:    "invalid expr never matches",
			node:    callspec.ExprArg("value >"),
			value:   3,
			want:    false,
			wantStr: `<expr "value >">`,
		},
		{name: "glob", node: callspec.GlobArg("user-*"), value: "user-42", want: true, wantStr: `<glob "user-*">`},
		{
			name:  "unknown tag falls back to exact",
			node:  callspec.ArgNode{Kind: "mystery", Literal: 7},
			value: 7,
			want:  true, wantStr: "7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := builder.Build(tt.node)
			assert.Equal(t, tt.want, c.Matches(tt.value))
			assert.Equal(t, tt.wantStr, c.String())
		})
	}
}

func TestBuilderCustomRecognizerWins(t *testing.T) {
	// A front end can claim nodes before the default dispatch sees them.
	sentinel := constraint.Exact("claimed")
	builder := constraint.NewBuilder(constraint.RecognizerFunc(
		func(node callspec.ArgNode) (callspec.Constraint, bool) {
			if node.Kind == callspec.ArgAny {
				return sentinel, true
			}
			return nil, false
		},
	))

	c := builder.Build(callspec.AnyArg())
	assert.True(t, c.Matches("claimed"))
	assert.False(t, c.Matches("anything else"))

	// Unclaimed nodes still take the default path.
	assert.True(t, builder.Build(callspec.Lit(1)).Matches(1))
}

func TestBuilderIsDeterministic(t *testing.T) {
	builder := constraint.NewBuilder()
	node := callspec.ExprArg("value == 1")

	a := builder.Build(node)
	b := builder.Build(node)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Matches(1), b.Matches(1))
	assert.Equal(t, a.Matches(2), b.Matches(2))
}

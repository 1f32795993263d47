package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getfaked/faked/pkg/constraint"
)

func TestExpr(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		value any
		want  bool
	}{
		{name: "numeric range", src: "value > 2 && value < 10", value: 5, want: true},
		{name: "numeric range lower bound", src: "value > 2 && value < 10", value: 2, want: false},
		{name: "string prefix", src: `value startsWith "user-"`, value: "user-42", want: true},
		{name: "string prefix mismatch", src: `value startsWith "user-"`, value: "admin-1", want: false},
		{name: "nil value", src: "value == nil", value: nil, want: true},
		{name: "type mismatch evaluates false", src: "value > 2", value: "five", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := constraint.Expr(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Matches(tt.value))
		})
	}
}

func TestExprCompileError(t *testing.T) {
	_, err := constraint.Expr("value >")
	assert.Error(t, err)
}

func TestExprReusesCompiledPrograms(t *testing.T) {
	// Same source twice: the second construction hits the program cache and
	// behaves identically.
	a, err := constraint.Expr("value == 7")
	require.NoError(t, err)
	b, err := constraint.Expr("value == 7")
	require.NoError(t, err)

	assert.True(t, a.Matches(7))
	assert.True(t, b.Matches(7))
	assert.False(t, b.Matches(8))
}

func TestArgsExpr(t *testing.T) {
	pred, err := constraint.ArgsExpr("len(args) == 2")
	require.NoError(t, err)

	assert.True(t, pred([]any{999, "anything"}))
	assert.False(t, pred([]any{1}))
	assert.False(t, pred(nil))
}

func TestArgsExprCompileError(t *testing.T) {
	_, err := constraint.ArgsExpr("len(")
	assert.Error(t, err)
}

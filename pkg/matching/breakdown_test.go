package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getfaked/faked/pkg/callspec"
	"github.com/getfaked/faked/pkg/constraint"
	"github.com/getfaked/faked/pkg/matching"
)

func TestMatchBreakdownFullMatch(t *testing.T) {
	m := matching.New(newDoSpec(t, callspec.Lit(5), callspec.AnyArg()))
	invoked := mustMethod(t, typeFor[worker](), "Do")

	b := m.MatchBreakdown(callspec.NewCall(worker{}, invoked, 5, "x"))

	require.Len(t, b.Fields, 3)
	for _, f := range b.Fields {
		assert.True(t, f.Matched, "field %s", f.Field)
	}
	assert.Equal(t, 100, b.MatchPercentage)
	assert.Empty(t, b.Reason)
	assert.Equal(t, m.Describe(), b.Description)
}

func TestMatchBreakdownNearMiss(t *testing.T) {
	m := matching.New(newDoSpec(t, callspec.Lit(5), callspec.AnyArg()))
	invoked := mustMethod(t, typeFor[worker](), "Do")

	full := m.MatchBreakdown(callspec.NewCall(worker{}, invoked, 5, "x"))
	miss := m.MatchBreakdown(callspec.NewCall(worker{}, invoked, 6, "x"))

	// Method identity holds, the first argument fails.
	require.Len(t, miss.Fields, 3)
	assert.True(t, miss.Fields[0].Matched)
	assert.False(t, miss.Fields[1].Matched)
	assert.True(t, miss.Fields[2].Matched)
	assert.Contains(t, miss.Reason, "argument 0")

	// Scoring orders the near miss below the full match.
	assert.Less(t, miss.Score, full.Score)
	assert.Equal(t, full.MaxPossibleScore, miss.MaxPossibleScore)
}

func TestMatchBreakdownMethodMismatch(t *testing.T) {
	// Specification against the concrete worker type so the rogue type cannot
	// satisfy it through the Doer interface.
	do := mustMethod(t, typeFor[worker](), "Do")
	spec, err := callspec.FromNode(
		callspec.Invoke(do, callspec.AnyArg(), callspec.AnyArg()),
		constraint.NewBuilder(),
	)
	require.NoError(t, err)
	m := matching.New(spec)

	rogueDo := mustMethod(t, typeFor[rogueWorker](), "Do")
	b := m.MatchBreakdown(callspec.NewCall(rogueWorker{}, rogueDo, 1, "a"))

	assert.False(t, b.Fields[0].Matched)
	assert.Contains(t, b.Reason, "does not resolve")
	// Arguments are still evaluated; breakdowns never short-circuit.
	assert.True(t, b.Fields[1].Matched)
	assert.True(t, b.Fields[2].Matched)
}

func TestMatchBreakdownOverriddenSpec(t *testing.T) {
	m := matching.New(newDoSpec(t, callspec.Lit(5), callspec.AnyArg()))
	invoked := mustMethod(t, typeFor[worker](), "Do")
	m.UseArgumentsPredicate(func(args []any) bool { return len(args) == 2 })

	b := m.MatchBreakdown(callspec.NewCall(worker{}, invoked, 999, "anything"))

	require.Len(t, b.Fields, 2)
	assert.Equal(t, "arguments", b.Fields[1].Field)
	assert.True(t, b.Fields[1].Matched)
	assert.Equal(t, callspec.TokenPredicated, b.Fields[1].Expected)
	assert.Equal(t, 100, b.MatchPercentage)
}

func TestMatchBreakdownArgumentCountMismatch(t *testing.T) {
	// Unlike Matches, breakdowns tolerate a short argument list so they can
	// diagnose interception-pipeline defects.
	m := matching.New(newDoSpec(t, callspec.Lit(5), callspec.AnyArg()))
	invoked := mustMethod(t, typeFor[worker](), "Do")

	b := m.MatchBreakdown(callspec.NewCall(worker{}, invoked, 5))

	require.Len(t, b.Fields, 3)
	assert.False(t, b.Fields[2].Matched)
	assert.Equal(t, "<missing>", b.Fields[2].Actual)
	assert.Contains(t, b.Reason, "call has 1 arguments, specification expects 2")
}

func TestMatchBreakdownNilCall(t *testing.T) {
	m := matching.New(newDoSpec(t, callspec.Lit(5)))
	b := m.MatchBreakdown(nil)
	assert.Empty(t, b.Fields)
	assert.Equal(t, 0, b.Score)
}

package matching

import (
	"fmt"
	"strings"

	"github.com/getfaked/faked/pkg/callspec"
)

// FieldResult describes whether a single specification field matched the
// call.
type FieldResult struct {
	Field    string `json:"field"`
	Matched  bool   `json:"matched"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

// Breakdown is the per-field result of testing a call against a
// specification without short-circuiting. Assertion layers use it to rank
// specifications that almost matched a call and to explain why none did.
type Breakdown struct {
	MatcherID        string        `json:"matcherId"`
	Description      string        `json:"description"`
	Score            int           `json:"score"`
	MaxPossibleScore int           `json:"maxPossibleScore"`
	MatchPercentage  int           `json:"matchPercentage"`
	Fields           []FieldResult `json:"fields"`
	Reason           string        `json:"reason,omitempty"`
}

// MatchBreakdown evaluates every specification field against the call
// without short-circuiting, returning per-field match/mismatch results and a
// weighted score. Unlike Matches, it tolerates an argument-count mismatch
// (reporting it as a failed field) so it can diagnose pipeline defects
// instead of panicking on them.
func (m *Matcher) MatchBreakdown(call *callspec.Call) *Breakdown {
	result := &Breakdown{
		MatcherID:   m.id,
		Description: m.Describe(),
	}
	if call == nil {
		return result
	}

	// Method identity
	identity := m.resolver.SameImplementation(call.RuntimeType, call.Method, m.spec.Method())
	field := FieldResult{
		Field:    "method",
		Matched:  identity,
		MaxScore: ScoreMethodIdentity,
		Expected: m.spec.Method().String(),
		Actual:   call.Method.String(),
	}
	if identity {
		field.Score = ScoreMethodIdentity
	} else {
		result.Reason = fmt.Sprintf("method %s does not resolve to %s on %v",
			call.Method, m.spec.Method(), call.RuntimeType)
	}
	result.Fields = append(result.Fields, field)

	if pred := m.spec.ArgumentsPredicate(); pred != nil {
		matched := pred(call.Args)
		field := FieldResult{
			Field:    "arguments",
			Matched:  matched,
			MaxScore: ScoreArgsPredicate,
			Expected: callspec.TokenPredicated,
			Actual:   renderArgs(call.Args),
		}
		if matched {
			field.Score = ScoreArgsPredicate
		} else if result.Reason == "" {
			result.Reason = "arguments rejected by whole-arguments predicate"
		}
		result.Fields = append(result.Fields, field)
	} else {
		constraints := m.spec.Constraints()
		for i, c := range constraints {
			weight := constraintWeight(c)
			field := FieldResult{
				Field:    fmt.Sprintf("arg[%d]", i),
				MaxScore: weight,
				Expected: c.String(),
			}
			if i >= len(call.Args) {
				field.Actual = "<missing>"
				if result.Reason == "" {
					result.Reason = fmt.Sprintf("call has %d arguments, specification expects %d",
						len(call.Args), len(constraints))
				}
			} else {
				field.Actual = callspec.RenderValue(call.Args[i])
				if c.Matches(call.Args[i]) {
					field.Matched = true
					field.Score = weight
				} else if result.Reason == "" {
					result.Reason = fmt.Sprintf("argument %d (%s) does not satisfy %s",
						i, field.Actual, field.Expected)
				}
			}
			result.Fields = append(result.Fields, field)
		}
	}

	for _, f := range result.Fields {
		result.Score += f.Score
		result.MaxPossibleScore += f.MaxScore
	}
	if result.MaxPossibleScore > 0 {
		result.MatchPercentage = result.Score * 100 / result.MaxPossibleScore
	}
	return result
}

// constraintWeight classifies a constraint by its rendering: the wildcard
// token weighs least, predicate-shaped renderings (angle-bracket tokens)
// weigh between wildcard and exact values.
func constraintWeight(c callspec.Constraint) int {
	s := c.String()
	switch {
	case s == callspec.TokenAny:
		return ScoreArgWildcard
	case s == "<nil>":
		return ScoreArgExact
	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return ScoreArgPredicate
	default:
		return ScoreArgExact
	}
}

func renderArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = callspec.RenderValue(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

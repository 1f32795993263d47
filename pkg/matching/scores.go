package matching

// Match score constants for breakdown diagnostics.
// Higher scores indicate more specific/precise matches. They never influence
// Matcher.Matches, which is strictly boolean; they only rank near misses.
const (
	// ScoreMethodIdentity is the score for resolving to the same
	// implementation. Highest weight: without it nothing else matters.
	ScoreMethodIdentity = 30

	// ScoreArgExact is the score for an exact-value argument match.
	ScoreArgExact = 15

	// ScoreArgPredicate is the score for a predicate-shaped argument match
	// (predicate, expression, glob, or JSONPath constraint).
	// Between exact (15) and wildcard (5).
	ScoreArgPredicate = 12

	// ScoreArgWildcard is the score for a wildcard argument match.
	// Low score as it accepts anything.
	ScoreArgWildcard = 5

	// ScoreArgsPredicate is the score for a whole-arguments predicate match
	// on an overridden specification.
	ScoreArgsPredicate = 12
)

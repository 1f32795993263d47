package matching

import (
	"log/slog"

	"github.com/getfaked/faked/internal/id"
	"github.com/getfaked/faked/pkg/callspec"
	"github.com/getfaked/faked/pkg/logging"
)

// Matcher tests live call records against one call specification.
//
// Matches and Describe are safe for concurrent use once the matcher is
// published; UseArgumentsPredicate is expected to run once, synchronously,
// before publication.
type Matcher struct {
	id       string
	spec     *callspec.Spec
	resolver *Resolver
	logger   *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithResolver shares a resolver (and its cache) across matchers.
func WithResolver(r *Resolver) Option {
	return func(m *Matcher) { m.resolver = r }
}

// WithLogger enables debug-level match tracing.
func WithLogger(l *slog.Logger) Option {
	return func(m *Matcher) { m.logger = l }
}

// New creates a matcher for the given specification.
func New(spec *callspec.Spec, opts ...Option) *Matcher {
	m := &Matcher{
		id:       id.UUID(),
		spec:     spec,
		resolver: NewResolver(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the matcher's instance identifier.
func (m *Matcher) ID() string {
	return m.id
}

// Spec returns the underlying specification.
func (m *Matcher) Spec() *callspec.Spec {
	return m.spec
}

// Matches reports whether the call satisfies the specification: the invoked
// method must resolve to the same implementation as the specified method on
// the call's runtime type, and the arguments must pass the specification's
// argument check. Method identity short-circuits the argument check.
func (m *Matcher) Matches(call *callspec.Call) bool {
	if call == nil {
		return false
	}

	if !m.resolver.SameImplementation(call.RuntimeType, call.Method, m.spec.Method()) {
		m.logger.Debug("method identity mismatch",
			"matcher", m.id,
			"specified", m.spec.Method().String(),
			"invoked", call.Method.String())
		return false
	}

	matched := m.spec.ArgumentsMatch(call.Args)
	m.logger.Debug("arguments checked",
		"matcher", m.id,
		"method", m.spec.Method().String(),
		"mode", string(m.spec.Mode()),
		"matched", matched)
	return matched
}

// UseArgumentsPredicate irreversibly replaces the specification's
// per-argument check with a single predicate over the whole argument list.
// See callspec.Spec.UseArgumentsPredicate.
func (m *Matcher) UseArgumentsPredicate(p callspec.ArgsPredicate) {
	m.spec.UseArgumentsPredicate(p)
}

// Describe renders the specification as
// "DeclaringType.Method(<c1>, <c2>, ...)". Deterministic; treat as a
// compatibility surface for assertion and reporting layers.
func (m *Matcher) Describe() string {
	return m.spec.Describe()
}

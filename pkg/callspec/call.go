package callspec

import "reflect"

// Call is one observed invocation on a fake object, produced by an external
// interception layer. It is read-only to the matching core.
//
// Args must have exactly as many values as the invoked method's arity; the
// interception layer guarantees this whenever the method references could
// plausibly match, and the matching core does not re-check it.
type Call struct {
	// Target is the instance the call was observed on.
	Target any

	// RuntimeType is the concrete type of Target.
	RuntimeType reflect.Type

	// Method is the invoked method reference.
	Method MethodRef

	// Args are the live argument values, in call order.
	Args []any
}

// NewCall builds a call record, capturing the runtime type from target.
func NewCall(target any, method MethodRef, args ...any) *Call {
	return &Call{
		Target:      target,
		RuntimeType: reflect.TypeOf(target),
		Method:      method,
		Args:        args,
	}
}

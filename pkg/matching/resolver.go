package matching

import (
	"reflect"
	"sync"

	"github.com/getfaked/faked/pkg/callspec"
)

// Resolver decides whether two method references, invoked on a given runtime
// type, necessarily execute the same implementation. Results are memoized
// per (runtimeType, refA, refB) triple; the mapping is referentially stable
// for the lifetime of the type system, so entries never need invalidation.
// Duplicate computation on a cache race is harmless.
type Resolver struct {
	cache sync.Map // resolveKey -> bool
}

type resolveKey struct {
	runtime      reflect.Type
	aDecl, bDecl reflect.Type
	name         string
}

// NewResolver creates a resolver with an empty cache.
func NewResolver() *Resolver {
	return &Resolver{}
}

// SameImplementation reports whether invoking either reference on an
// instance of runtimeType executes the identical method body.
//
// It is reflexive for any method runtimeType implements, true for an
// interface method paired with the concrete method satisfying it, and true
// for a method on an embedded type paired with the outer type's method-set
// entry of the same name (the promoted or shadowing method a caller actually
// reaches). References naming unrelated methods, or same-name methods on
// types not connected to runtimeType, resolve to false. The function is
// total: it never fails, it only answers false.
func (r *Resolver) SameImplementation(runtimeType reflect.Type, a, b callspec.MethodRef) bool {
	if runtimeType == nil || a.IsZero() || b.IsZero() {
		return false
	}
	if a.Name != b.Name {
		return false
	}

	key := resolveKey{runtime: runtimeType, aDecl: a.Declaring, bDecl: b.Declaring, name: a.Name}
	if cached, ok := r.cache.Load(key); ok {
		return cached.(bool)
	}

	same := resolvesOn(runtimeType, a) && resolvesOn(runtimeType, b)
	r.cache.Store(key, same)
	return same
}

// resolvesOn reports whether a call through ref, on an instance of the
// runtime type, lands on the runtime type's own method-set entry. That
// requires the runtime type to expose a method with the reference's name and
// signature, and the declaring type to be reachable from the runtime type
// via interface satisfaction or embedding.
func resolvesOn(runtimeType reflect.Type, ref callspec.MethodRef) bool {
	// A hand-built reference can carry a name and signature without a
	// declaring type; it resolves to nothing.
	if ref.Declaring == nil {
		return false
	}
	impl, err := callspec.MethodOf(runtimeType, ref.Name)
	if err != nil {
		return false
	}
	if impl.Signature != ref.Signature {
		return false
	}

	if ref.Declaring.Kind() == reflect.Interface {
		return implementsIface(runtimeType, ref.Declaring)
	}
	return embedsType(runtimeType, ref.Declaring)
}

// implementsIface checks interface satisfaction against both the value and
// pointer method sets of the runtime type.
func implementsIface(runtimeType, iface reflect.Type) bool {
	if runtimeType.Implements(iface) {
		return true
	}
	if runtimeType.Kind() != reflect.Pointer {
		return reflect.PointerTo(runtimeType).Implements(iface)
	}
	return false
}

// embedsType reports whether target is outer itself or an embedded ancestor
// of outer, at any depth. Pointer wrappers on either side are ignored.
func embedsType(outer, target reflect.Type) bool {
	outer = deref(outer)
	target = deref(target)
	if outer == target {
		return true
	}
	if outer.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < outer.NumField(); i++ {
		f := outer.Field(i)
		if !f.Anonymous {
			continue
		}
		if embedsType(f.Type, target) {
			return true
		}
	}
	return false
}

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

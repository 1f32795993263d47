package callspec

import (
	"fmt"
	"reflect"
)

// MethodRef identifies a method or property getter, scoped to the type that
// declares it. Two MethodRefs with different declaring types may still resolve
// to the same implementation on a concrete runtime type (an interface method
// and the concrete method that satisfies it, or a method promoted from an
// embedded type); that resolution is the matching package's concern.
type MethodRef struct {
	// Declaring is the type the reference was written against: an interface,
	// a struct, or a pointer-to-struct type.
	Declaring reflect.Type

	// Name is the method name.
	Name string

	// Signature is the receiver-stripped func type of the method.
	Signature reflect.Type
}

// MethodOf returns a reference to the named method on typ. For concrete types
// both the value and pointer method sets are searched.
func MethodOf(typ reflect.Type, name string) (MethodRef, error) {
	if typ == nil {
		return MethodRef{}, fmt.Errorf("%w: nil type", ErrMethodNotFound)
	}

	if typ.Kind() == reflect.Interface {
		m, ok := typ.MethodByName(name)
		if !ok {
			return MethodRef{}, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, typ, name)
		}
		// Interface methods already carry a receiver-free signature.
		return MethodRef{Declaring: typ, Name: name, Signature: m.Type}, nil
	}

	m, ok := typ.MethodByName(name)
	if !ok && typ.Kind() != reflect.Pointer {
		m, ok = reflect.PointerTo(typ).MethodByName(name)
	}
	if !ok {
		return MethodRef{}, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, typ, name)
	}

	return MethodRef{Declaring: typ, Name: name, Signature: stripReceiver(m.Type)}, nil
}

// stripReceiver removes the receiver (first input) from a concrete method's
// func type so signatures compare equal across interface and concrete refs.
func stripReceiver(ft reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, ft.NumIn()-1)
	for i := 1; i < ft.NumIn(); i++ {
		in = append(in, ft.In(i))
	}
	out := make([]reflect.Type, 0, ft.NumOut())
	for i := 0; i < ft.NumOut(); i++ {
		out = append(out, ft.Out(i))
	}
	return reflect.FuncOf(in, out, ft.IsVariadic())
}

// Arity returns the number of formal parameters (receiver excluded).
func (r MethodRef) Arity() int {
	if r.Signature == nil {
		return 0
	}
	return r.Signature.NumIn()
}

// IsZero reports whether the reference is the zero value.
func (r MethodRef) IsZero() bool {
	return r.Declaring == nil && r.Name == ""
}

// String renders the reference as "DeclaringType.Name".
func (r MethodRef) String() string {
	if r.Declaring == nil {
		return r.Name
	}
	return r.Declaring.String() + "." + r.Name
}

// PropertyRef identifies a readable property on a declaring type. In Go a
// property read is an invocation of its zero-argument getter method.
type PropertyRef struct {
	Declaring reflect.Type
	Name      string
}

// Getter resolves the property to its getter method reference. The getter is
// the method with the property's name taking no arguments; a "Get" prefixed
// method is accepted as a fallback.
func (p PropertyRef) Getter() (MethodRef, error) {
	ref, err := MethodOf(p.Declaring, p.Name)
	if err != nil {
		ref, err = MethodOf(p.Declaring, "Get"+p.Name)
	}
	if err != nil {
		return MethodRef{}, fmt.Errorf("%w: %s.%s", ErrPropertyNotReadable, p.Declaring, p.Name)
	}
	if ref.Arity() != 0 {
		return MethodRef{}, fmt.Errorf("%w: %s.%s takes arguments", ErrPropertyNotReadable, p.Declaring, p.Name)
	}
	return ref, nil
}

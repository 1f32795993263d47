package portability

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/getfaked/faked/pkg/callspec"
)

// TypeIndex maps the type names used in documents back to Go types so
// documents can be imported into callspec nodes. Registration happens at
// assembly time, before concurrent use.
type TypeIndex struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewTypeIndex creates an empty index.
func NewTypeIndex() *TypeIndex {
	return &TypeIndex{types: make(map[string]reflect.Type)}
}

// Register adds a type under its reflect rendering (e.g. "billing.Service").
// Interface types must be registered via RegisterType since values erase
// them.
func (ix *TypeIndex) Register(sample any) {
	ix.RegisterType(reflect.TypeOf(sample))
}

// RegisterType adds a type under its reflect rendering.
func (ix *TypeIndex) RegisterType(t reflect.Type) {
	if t == nil {
		return
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.types[t.String()] = t
}

// Lookup returns the registered type for a document type name.
func (ix *TypeIndex) Lookup(name string) (reflect.Type, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	t, ok := ix.types[name]
	return t, ok
}

// Import rebuilds a captured call node from a document, resolving the
// declaring type through the index.
func (ix *TypeIndex) Import(doc *Document) (*callspec.Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", callspec.ErrInvalidShape)
	}

	declaring, ok := ix.Lookup(doc.Method.Type)
	if !ok {
		return nil, fmt.Errorf("portability: type %q is not registered", doc.Method.Type)
	}

	if doc.Method.Property {
		return callspec.ReadProperty(callspec.PropertyRef{
			Declaring: declaring,
			Name:      doc.Method.Name,
		}), nil
	}

	method, err := callspec.MethodOf(declaring, doc.Method.Name)
	if err != nil {
		return nil, err
	}

	args := make([]callspec.ArgNode, len(doc.Args))
	for i, ad := range doc.Args {
		arg, err := importArg(ad)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return callspec.Invoke(method, args...), nil
}

func importArg(ad ArgDoc) (callspec.ArgNode, error) {
	switch callspec.ArgKind(ad.Kind) {
	case callspec.ArgLiteral:
		return callspec.Lit(ad.Value), nil
	case callspec.ArgAny:
		return callspec.AnyArg(), nil
	case callspec.ArgExpr:
		return callspec.ExprArg(ad.Expr), nil
	case callspec.ArgJSONPath:
		return callspec.JSONPathArg(ad.Paths), nil
	case callspec.ArgGlob:
		return callspec.GlobArg(ad.Pattern), nil
	default:
		return callspec.ArgNode{}, fmt.Errorf("%w: %q", ErrUnknownKind, ad.Kind)
	}
}

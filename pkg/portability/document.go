package portability

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/getfaked/faked/pkg/callspec"
)

var (
	// ErrNotPortable indicates the node contains an argument kind that
	// cannot be expressed in a document (a Go func predicate).
	ErrNotPortable = errors.New("portability: node contains a non-portable argument")

	// ErrUnknownKind indicates a document argument carries an unrecognized
	// kind tag.
	ErrUnknownKind = errors.New("portability: unknown argument kind")
)

// File is a collection of specification documents as stored on disk.
type File struct {
	Version string     `json:"version,omitempty" yaml:"version,omitempty"`
	Specs   []Document `json:"specs" yaml:"specs"`
}

// Document is one portable call specification.
type Document struct {
	Method MethodDoc `json:"method" yaml:"method"`
	Args   []ArgDoc  `json:"args,omitempty" yaml:"args,omitempty"`
}

// MethodDoc names the declared method or property.
type MethodDoc struct {
	// Type is the declaring type's name as rendered by reflect, e.g.
	// "billing.Service" or "*billing.Service".
	Type string `json:"type" yaml:"type"`

	// Name is the method or property name.
	Name string `json:"name" yaml:"name"`

	// Property marks a property read (zero-argument getter invocation).
	Property bool `json:"property,omitempty" yaml:"property,omitempty"`
}

// ArgDoc is one portable argument node. Kind mirrors callspec.ArgKind minus
// the predicate kind.
type ArgDoc struct {
	Kind    string         `json:"kind" yaml:"kind"`
	Value   any            `json:"value,omitempty" yaml:"value,omitempty"`
	Expr    string         `json:"expr,omitempty" yaml:"expr,omitempty"`
	Paths   map[string]any `json:"paths,omitempty" yaml:"paths,omitempty"`
	Pattern string         `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// ParseFile decodes a specification file. YAML is the canonical format; JSON
// parses through the same path since YAML is a superset.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("portability: parse file: %w", err)
	}
	return &f, nil
}

// Marshal encodes the file as YAML.
func (f *File) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("portability: marshal file: %w", err)
	}
	return data, nil
}

// Export converts a captured call node into a portable document. Nodes with
// func-predicate arguments fail with ErrNotPortable; invalid shapes fail
// with callspec.ErrInvalidShape.
func Export(node *callspec.Node) (*Document, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", callspec.ErrInvalidShape)
	}

	switch node.Kind {
	case callspec.KindMethodCall:
		mc := node.MethodCall
		if mc == nil {
			return nil, fmt.Errorf("%w: method_call node without payload", callspec.ErrInvalidShape)
		}
		doc := &Document{Method: MethodDoc{
			Type: mc.Method.Declaring.String(),
			Name: mc.Method.Name,
		}}
		for _, arg := range mc.Args {
			ad, err := exportArg(arg)
			if err != nil {
				return nil, err
			}
			doc.Args = append(doc.Args, ad)
		}
		return doc, nil

	case callspec.KindPropertyRead:
		pr := node.PropertyRead
		if pr == nil {
			return nil, fmt.Errorf("%w: property_read node without payload", callspec.ErrInvalidShape)
		}
		return &Document{Method: MethodDoc{
			Type:     pr.Property.Declaring.String(),
			Name:     pr.Property.Name,
			Property: true,
		}}, nil

	default:
		return nil, fmt.Errorf("%w: kind %q", callspec.ErrInvalidShape, node.Kind)
	}
}

func exportArg(arg callspec.ArgNode) (ArgDoc, error) {
	switch arg.Kind {
	case callspec.ArgLiteral:
		return ArgDoc{Kind: string(callspec.ArgLiteral), Value: arg.Literal}, nil
	case callspec.ArgAny:
		return ArgDoc{Kind: string(callspec.ArgAny)}, nil
	case callspec.ArgExpr:
		return ArgDoc{Kind: string(callspec.ArgExpr), Expr: arg.Expr}, nil
	case callspec.ArgJSONPath:
		return ArgDoc{Kind: string(callspec.ArgJSONPath), Paths: arg.Paths}, nil
	case callspec.ArgGlob:
		return ArgDoc{Kind: string(callspec.ArgGlob), Pattern: arg.Pattern}, nil
	case callspec.ArgPredicate:
		return ArgDoc{}, ErrNotPortable
	default:
		return ArgDoc{}, fmt.Errorf("%w: %q", ErrUnknownKind, arg.Kind)
	}
}

// Describe renders the document's canonical description,
// "Type.Name(<c1>, <c2>, ...)", identical to what a Spec built from the
// imported node would render. No type registration is required.
func (d *Document) Describe() string {
	var b strings.Builder
	b.WriteString(d.Method.Type)
	b.WriteByte('.')
	b.WriteString(d.Method.Name)
	b.WriteByte('(')
	for i, arg := range d.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(describeArg(arg))
	}
	b.WriteByte(')')
	return b.String()
}

func describeArg(arg ArgDoc) string {
	switch callspec.ArgKind(arg.Kind) {
	case callspec.ArgAny:
		return callspec.TokenAny
	case callspec.ArgExpr:
		return fmt.Sprintf("<expr %q>", arg.Expr)
	case callspec.ArgGlob:
		return fmt.Sprintf("<glob %q>", arg.Pattern)
	case callspec.ArgJSONPath:
		paths := make([]string, 0, len(arg.Paths))
		for path := range arg.Paths {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		return "<jsonpath " + strings.Join(paths, " ") + ">"
	default:
		return callspec.RenderValue(arg.Value)
	}
}

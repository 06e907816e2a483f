package extract

import (
	"github.com/c360studio/exast/ast"
)

// Field is one field of a struct definition.
type Field struct {
	Name string

	// Default is the verbatim default value, never evaluated. Nil when
	// the field was declared as a bare atom.
	Default    ast.Node
	HasDefault bool
}

// Struct is the extraction record for a struct or exception definition.
type Struct struct {
	Fields []Field

	// EnforcedKeys are the fields required at construction time, enforced
	// outside the type system.
	EnforcedKeys []string

	Derives []Derive

	IsException bool

	// HasMessageCallback is set when an exception body defines its own
	// single-argument message function.
	HasMessageCallback bool

	// MessageDefault is the literal string default of a field literally
	// named message, when present.
	MessageDefault string

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsStructDef reports whether the node is a defstruct or defexception
// declaration.
func IsStructDef(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && (call.Tag == "defstruct" || call.Tag == "defexception") && len(call.Args) == 1
}

// ExtractStruct converts a defstruct or defexception node into a Struct
// record holding the field list only. Body-level context (enforced keys,
// derives, message callbacks) comes from ExtractStructFromBody.
func ExtractStruct(n ast.Node) (*Struct, error) {
	call, ok := n.(*ast.Call)
	if !ok || (call.Tag != "defstruct" && call.Tag != "defexception") || len(call.Args) != 1 {
		return nil, notKind("struct definition", n)
	}

	s := &Struct{
		IsException: call.Tag == "defexception",
		Location:    nodeLocation(n),
		Metadata:    Metadata{},
	}

	list, ok := call.Args[0].(*ast.List)
	if !ok {
		return nil, notKind("struct definition", n)
	}

	for _, el := range list.Elements {
		switch v := el.(type) {
		case *ast.Atom:
			s.Fields = append(s.Fields, Field{Name: v.Name})
		case *ast.Tuple:
			if len(v.Elements) != 2 {
				continue
			}
			name, ok := ast.AtomName(v.Elements[0])
			if !ok {
				continue
			}
			field := Field{Name: name, Default: v.Elements[1], HasDefault: true}
			s.Fields = append(s.Fields, field)
			if name == "message" {
				if str, ok := v.Elements[1].(*ast.String); ok {
					s.MessageDefault = str.Value
				}
			}
		}
	}

	s.Metadata["field_count"] = len(s.Fields)
	return s, nil
}

// ExtractStructFromBody extracts a struct definition in its module
// context: the defstruct/defexception statement plus sibling enforced-key
// declarations, derive directives, and (for exceptions) a user-supplied
// message function. The node may be a defmodule or a bare body.
func ExtractStructFromBody(n ast.Node, opts Options) (*Struct, error) {
	statements, ok := definitionBody(n)
	if !ok {
		return nil, notKind("struct body", n)
	}

	var s *Struct
	for _, stmt := range statements {
		if !IsStructDef(stmt) {
			continue
		}
		extracted, err := ExtractStruct(stmt)
		if err != nil {
			opts.logger().Warn("skipping malformed struct definition",
				"node", ast.Render(stmt))
			continue
		}
		s = extracted
		break
	}
	if s == nil {
		return nil, notKind("struct body", n)
	}

	for _, stmt := range statements {
		if name, value, ok := attribute(stmt); ok {
			switch name {
			case "enforce_keys":
				s.EnforcedKeys = append(s.EnforcedKeys, enforcedKeys(value)...)
			case "derive":
				s.Derives = append(s.Derives, ParseDeriveDirective(value)...)
			}
			continue
		}
		if s.IsException && isMessageCallback(stmt) {
			s.HasMessageCallback = true
		}
	}

	s.Metadata["enforced_count"] = len(s.EnforcedKeys)
	return s, nil
}

// enforcedKeys flattens an enforced-keys declaration into atom names. A
// single bare atom and a list of atoms are both accepted.
func enforcedKeys(n ast.Node) []string {
	if name, ok := ast.AtomName(n); ok {
		return []string{name}
	}
	list, ok := n.(*ast.List)
	if !ok {
		return nil
	}
	var keys []string
	for _, el := range list.Elements {
		if name, ok := ast.AtomName(el); ok {
			keys = append(keys, name)
		}
	}
	return keys
}

// isMessageCallback detects a user-supplied single-argument message
// function definition by signature, guard-head variant included.
func isMessageCallback(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	if !ok || (call.Tag != "def" && call.Tag != "defp") {
		return false
	}
	head, _, ok := decomposeDefinition(call)
	return ok && head.name == "message" && len(head.params) == 1
}

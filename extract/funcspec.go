package extract

import (
	"github.com/c360studio/exast/ast"
)

// TypeConstraint is one type-variable constraint of a spec's when clause.
type TypeConstraint struct {
	Var   string
	Bound ast.Node
}

// FunctionSpec is the extraction record for a type-signature declaration.
type FunctionSpec struct {
	Name string

	// Arity is derived from the parsed parameter-type list length, never
	// from a separate declaration.
	Arity int

	ParameterTypes []ast.Node
	ReturnType     ast.Node
	Constraints    []TypeConstraint

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsFunctionSpec reports whether the node is a spec-shaped signature,
// either the bare name(params) :: return form or that form wrapped in a
// type-variable constraint clause, optionally under a @spec attribute.
func IsFunctionSpec(n ast.Node) bool {
	if name, value, ok := attribute(n); ok {
		return name == "spec" && value != nil && IsFunctionSpec(value)
	}
	call, ok := n.(*ast.Call)
	if !ok {
		return false
	}
	if call.Tag == "when" && len(call.Args) >= 1 {
		return IsFunctionSpec(call.Args[0])
	}
	return call.Tag == "::" && len(call.Args) == 2
}

// ExtractFunctionSpec parses a type-signature node of shape
// name(param_types...) :: return_type, optionally wrapped in a
// when [var: bound, ...] constraint form. Both the @spec attribute node
// and its unwrapped value are accepted.
func ExtractFunctionSpec(n ast.Node) (*FunctionSpec, error) {
	target := n
	if name, value, ok := attribute(n); ok {
		if name != "spec" || value == nil {
			return nil, notKind("function spec", n)
		}
		target = value
	}

	var constraints []TypeConstraint
	if when, ok := target.(*ast.Call); ok && when.Tag == "when" && len(when.Args) == 2 {
		constraints = parseConstraints(when.Args[1])
		target = when.Args[0]
	}

	sig, ok := target.(*ast.Call)
	if !ok || sig.Tag != "::" || len(sig.Args) != 2 {
		return nil, notKind("function spec", n)
	}

	spec := &FunctionSpec{
		ReturnType:  sig.Args[1],
		Constraints: constraints,
		Location:    nodeLocation(n),
		Metadata:    Metadata{},
	}

	switch head := sig.Args[0].(type) {
	case *ast.Call:
		if isSpecialForm(head.Tag) {
			return nil, notKind("function spec", n)
		}
		spec.Name = head.Tag
		spec.ParameterTypes = head.Args
	case *ast.Variable:
		spec.Name = head.Name
	default:
		return nil, notKind("function spec", n)
	}

	spec.Arity = len(spec.ParameterTypes)
	spec.Metadata["constrained"] = len(constraints) > 0
	return spec, nil
}

func parseConstraints(n ast.Node) []TypeConstraint {
	pairs, ok := ast.KeywordPairs(n)
	if !ok {
		return nil
	}
	out := make([]TypeConstraint, 0, len(pairs))
	for _, p := range pairs {
		name, ok := ast.AtomName(p.Key)
		if !ok {
			continue
		}
		out = append(out, TypeConstraint{Var: name, Bound: p.Value})
	}
	return out
}

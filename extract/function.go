package extract

import (
	"github.com/c360studio/exast/ast"
)

// Visibility indicates whether a definition is public or private.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Function is the extraction record for a function definition.
type Function struct {
	Name       string
	Arity      int
	// MinArity is Arity minus the number of default-valued parameters:
	// defaults create an arity range, not a point value.
	MinArity   int
	Visibility Visibility
	Parameters []*Parameter
	Guard      *Guard
	Body       []ast.Node
	HasBody    bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// definitionHead is the decomposed head of a def-shaped node.
type definitionHead struct {
	name   string
	params []ast.Node
	guard  ast.Node
}

// decomposeDefinition splits a definition node into head and body parts.
// The guard-augmented head shape (a when-wrapped call in the name
// position) is matched before the guard-less shape: matched the other way
// round, the definition would be silently misread as a function named
// "when".
func decomposeDefinition(call *ast.Call) (definitionHead, ast.Node, bool) {
	if len(call.Args) == 0 {
		return definitionHead{}, nil, false
	}

	headNode := call.Args[0]
	var head definitionHead

	if when, ok := headNode.(*ast.Call); ok && when.Tag == "when" && len(when.Args) >= 2 {
		head.guard = when.Args[len(when.Args)-1]
		headNode = when.Args[0]
	}

	switch v := headNode.(type) {
	case *ast.Call:
		if isSpecialForm(v.Tag) {
			return definitionHead{}, nil, false
		}
		head.name = v.Tag
		head.params = v.Args
	case *ast.Variable:
		// Zero-arity definition without parentheses.
		head.name = v.Name
	default:
		return definitionHead{}, nil, false
	}

	body, _ := blockArg(call.Args[1:], "do")
	return head, body, true
}

// IsFunction reports whether the node is a function definition.
func IsFunction(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && (call.Tag == "def" || call.Tag == "defp") && len(call.Args) >= 1
}

// ExtractFunction converts a def or defp node into a Function record.
// All four definition shapes are matched: with or without guard, with or
// without body (a body-less head declares defaults for a multi-clause
// definition).
func ExtractFunction(n ast.Node, opts Options) (*Function, error) {
	call, ok := n.(*ast.Call)
	if !ok || (call.Tag != "def" && call.Tag != "defp") {
		return nil, notKind("function definition", n)
	}

	head, body, ok := decomposeDefinition(call)
	if !ok {
		return nil, notKind("function definition", n)
	}

	fn := &Function{
		Name:       head.name,
		Arity:      len(head.params),
		Visibility: VisibilityPublic,
		Parameters: ExtractParameters(head.params, opts),
		HasBody:    body != nil,
		Body:       normalizeBody(body),
		Location:   location(n, opts),
		Metadata:   Metadata{},
	}
	if call.Tag == "defp" {
		fn.Visibility = VisibilityPrivate
	}

	defaults := 0
	for _, p := range fn.Parameters {
		if p.Kind == ParamDefault {
			defaults++
		}
	}
	fn.MinArity = fn.Arity - defaults

	if head.guard != nil {
		guard, err := ExtractGuard(head.guard)
		if err == nil {
			fn.Guard = guard
		}
	}

	fn.Metadata["has_guard"] = fn.Guard != nil
	fn.Metadata["default_count"] = defaults
	return fn, nil
}

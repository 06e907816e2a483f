package extract

import (
	"github.com/c360studio/exast/ast"
)

// Macro is the extraction record for a macro definition.
type Macro struct {
	Name       string
	Arity      int
	MinArity   int
	Visibility Visibility
	Parameters []*Parameter
	Guard      *Guard
	Body       []ast.Node
	HasBody    bool

	// Hygienic is false when the body calls a variable-capture-breaking
	// primitive: such a macro can leak bindings into or capture bindings
	// from the caller's scope.
	Hygienic bool

	// UsesUnquote flags expression-escaping primitives in the body. This
	// is normal quoting machinery and does not affect the hygiene verdict.
	UsesUnquote bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsMacro reports whether the node is a macro definition.
func IsMacro(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && (call.Tag == "defmacro" || call.Tag == "defmacrop") && len(call.Args) >= 1
}

// ExtractMacro converts a defmacro or defmacrop node into a Macro record,
// sharing the definition-shape logic with function extraction and adding
// the hygiene classification.
func ExtractMacro(n ast.Node, opts Options) (*Macro, error) {
	call, ok := n.(*ast.Call)
	if !ok || (call.Tag != "defmacro" && call.Tag != "defmacrop") {
		return nil, notKind("macro definition", n)
	}

	head, body, ok := decomposeDefinition(call)
	if !ok {
		return nil, notKind("macro definition", n)
	}

	m := &Macro{
		Name:       head.name,
		Arity:      len(head.params),
		Visibility: VisibilityPublic,
		Parameters: ExtractParameters(head.params, opts),
		HasBody:    body != nil,
		Body:       normalizeBody(body),
		Location:   location(n, opts),
		Metadata:   Metadata{},
	}
	if call.Tag == "defmacrop" {
		m.Visibility = VisibilityPrivate
	}

	defaults := 0
	for _, p := range m.Parameters {
		if p.Kind == ParamDefault {
			defaults++
		}
	}
	m.MinArity = m.Arity - defaults

	if head.guard != nil {
		if guard, err := ExtractGuard(head.guard); err == nil {
			m.Guard = guard
		}
	}

	m.Hygienic = !containsCallTo(m.Body, "var!")
	m.UsesUnquote = containsCallTo(m.Body, "unquote") ||
		containsCallTo(m.Body, "unquote_splicing")

	m.Metadata["has_guard"] = m.Guard != nil
	m.Metadata["hygienic"] = m.Hygienic
	return m, nil
}

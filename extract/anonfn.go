package extract

import (
	"github.com/c360studio/exast/ast"
)

// FnClause is one clause of an anonymous function literal.
type FnClause struct {
	Parameters []ast.Node

	// ParameterPatterns is populated only under Options.IncludePatterns.
	ParameterPatterns []*Pattern

	Guard ast.Node
	Body  []ast.Node

	Malformed bool
}

// AnonymousFunction is the extraction record for a fn literal.
type AnonymousFunction struct {
	Clauses []*FnClause
	Arity   int

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsAnonymousFunction reports whether the node is a fn literal.
func IsAnonymousFunction(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "fn" && len(call.Args) >= 1
}

// ExtractAnonymousFunction converts a fn node into an AnonymousFunction
// record. All clauses must share the same parameter count; disagreeing
// clause arities are a genuine contract violation and fail extraction
// with an *ArityMismatchError rather than silently reporting the first
// clause's arity. A malformed individual clause degrades to an empty
// clause record without aborting its siblings.
func ExtractAnonymousFunction(n ast.Node, opts Options) (*AnonymousFunction, error) {
	call, ok := n.(*ast.Call)
	if !ok || call.Tag != "fn" || len(call.Args) == 0 {
		return nil, notKind("anonymous function", n)
	}

	fn := &AnonymousFunction{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	var arities []int
	for _, arg := range call.Args {
		clause, ok := arg.(*ast.Call)
		if !ok || clause.Tag != "->" || len(clause.Args) != 2 {
			opts.logger().Warn("malformed anonymous function clause, degrading",
				"node", ast.Render(arg))
			fn.Clauses = append(fn.Clauses, &FnClause{Malformed: true})
			continue
		}

		fc := extractFnClause(clause, opts)
		fn.Clauses = append(fn.Clauses, fc)
		arities = append(arities, len(fc.Parameters))
	}

	for _, arity := range arities {
		if arity != arities[0] {
			return nil, &ArityMismatchError{Arities: arities}
		}
	}
	if len(arities) > 0 {
		fn.Arity = arities[0]
	}

	fn.Metadata["clause_count"] = len(fn.Clauses)
	return fn, nil
}

func extractFnClause(clause *ast.Call, opts Options) *FnClause {
	fc := &FnClause{
		Body: normalizeBody(clause.Args[1]),
	}

	head := clause.Args[0]
	var params []ast.Node
	if list, ok := head.(*ast.List); ok {
		params = list.Elements
	} else {
		params = []ast.Node{head}
	}

	// A guard wraps the whole parameter list in a when node.
	if len(params) == 1 {
		if when, ok := params[0].(*ast.Call); ok && when.Tag == "when" && len(when.Args) >= 2 {
			fc.Guard = when.Args[len(when.Args)-1]
			params = when.Args[:len(when.Args)-1]
		}
	}

	fc.Parameters = params
	if opts.IncludePatterns {
		for _, p := range params {
			if rec, err := ExtractPattern(p); err == nil {
				fc.ParameterPatterns = append(fc.ParameterPatterns, rec)
			} else {
				fc.ParameterPatterns = append(fc.ParameterPatterns, nil)
			}
		}
	}
	return fc
}

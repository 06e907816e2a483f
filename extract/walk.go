package extract

import (
	"github.com/c360studio/exast/ast"
)

// Walk performs a depth-first prewalk over a node tree, calling visit at
// each node. Returning false from visit skips the node's children.
func Walk(n ast.Node, visit func(ast.Node) bool) {
	walkDepth(n, visit, DefaultMaxDepth)
}

// walkDepth is Walk with an explicit depth bound. Subtrees past the bound
// are silently skipped, guaranteeing termination on pathological input.
func walkDepth(n ast.Node, visit func(ast.Node) bool, depth int) {
	if n == nil || depth <= 0 {
		return
	}
	if !visit(n) {
		return
	}
	for _, child := range children(n) {
		walkDepth(child, visit, depth-1)
	}
}

// children returns the ordered child nodes of a node, or nil for scalars.
func children(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Call:
		return v.Args
	case *ast.RemoteCall:
		out := make([]ast.Node, 0, len(v.Args)+1)
		out = append(out, v.Receiver)
		out = append(out, v.Args...)
		return out
	case *ast.List:
		return v.Elements
	case *ast.Tuple:
		return v.Elements
	case *ast.Map:
		out := make([]ast.Node, 0, len(v.Pairs)*2)
		for _, p := range v.Pairs {
			out = append(out, p.Key, p.Value)
		}
		return out
	default:
		return nil
	}
}

// ControlFlow aggregates every control-flow construct found by bulk
// recursive extraction over a subtree.
type ControlFlow struct {
	Conditionals   []*Conditional
	Cases          []*CaseExpression
	Withs          []*WithExpression
	Receives       []*ReceiveExpression
	Tries          []*TryExpression
	Comprehensions []*Comprehension
	Raises         []*RaiseExpression
	Throws         []*ThrowExpression
}

// ExtractControlFlow walks a subtree and extracts every control-flow
// construct it contains, including constructs nested inside the clause
// bodies of other constructs. Recursion is bounded by opts.MaxDepth;
// subtrees past the bound contribute nothing. A matched construct is
// returned once as a whole record and only its children are re-scanned,
// so a node is never double-counted as both a top-level and a nested hit.
func ExtractControlFlow(n ast.Node, opts Options) *ControlFlow {
	cf := &ControlFlow{}
	cf.scan(n, opts, opts.maxDepth())
	return cf
}

func (cf *ControlFlow) scan(n ast.Node, opts Options, depth int) {
	if n == nil || depth <= 0 {
		return
	}

	var nested []ast.Node

	switch {
	case IsConditional(n):
		rec, err := ExtractConditional(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Conditionals = append(cf.Conditionals, rec)
		nested = append(nested, rec.Condition)
		nested = append(nested, rec.Then...)
		nested = append(nested, rec.Else...)
		for _, cl := range rec.Clauses {
			nested = append(nested, cl.Condition)
			nested = append(nested, cl.Body...)
		}
	case IsCase(n):
		rec, err := ExtractCase(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Cases = append(cf.Cases, rec)
		nested = append(nested, rec.Subject)
		for _, cl := range rec.Clauses {
			nested = append(nested, cl.Body...)
		}
	case IsWith(n):
		rec, err := ExtractWith(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Withs = append(cf.Withs, rec)
		for _, cl := range rec.Clauses {
			nested = append(nested, cl.Expression)
		}
		nested = append(nested, rec.Body...)
		for _, cl := range rec.ElseClauses {
			nested = append(nested, cl.Body...)
		}
	case IsReceive(n):
		rec, err := ExtractReceive(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Receives = append(cf.Receives, rec)
		for _, cl := range rec.Clauses {
			nested = append(nested, cl.Body...)
		}
		if rec.After != nil {
			nested = append(nested, rec.After.Body...)
		}
	case IsTry(n):
		rec, err := ExtractTry(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Tries = append(cf.Tries, rec)
		nested = append(nested, rec.Body...)
		for _, cl := range rec.RescueClauses {
			nested = append(nested, cl.Body...)
		}
		for _, cl := range rec.CatchClauses {
			nested = append(nested, cl.Body...)
		}
		for _, cl := range rec.ElseClauses {
			nested = append(nested, cl.Body...)
		}
		nested = append(nested, rec.AfterBody...)
	case IsComprehension(n):
		rec, err := ExtractComprehension(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Comprehensions = append(cf.Comprehensions, rec)
		for _, cl := range rec.Clauses {
			nested = append(nested, cl.Enumerable, cl.Expression)
		}
		nested = append(nested, rec.Body...)
	case IsRaise(n):
		rec, err := ExtractRaise(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Raises = append(cf.Raises, rec)
		nested = append(nested, rec.Value, rec.Options)
	case IsThrow(n):
		rec, err := ExtractThrow(n, opts)
		if err != nil {
			nested = children(n)
			break
		}
		cf.Throws = append(cf.Throws, rec)
		nested = append(nested, rec.Value)
	default:
		nested = children(n)
	}

	for _, child := range nested {
		cf.scan(child, opts, depth-1)
	}
}

// Total returns the number of constructs collected.
func (cf *ControlFlow) Total() int {
	return len(cf.Conditionals) + len(cf.Cases) + len(cf.Withs) +
		len(cf.Receives) + len(cf.Tries) + len(cf.Comprehensions) +
		len(cf.Raises) + len(cf.Throws)
}

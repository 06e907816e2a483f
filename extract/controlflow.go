package extract

import (
	"github.com/c360studio/exast/ast"
)

// AfterClause is the timeout clause of a receive construct.
type AfterClause struct {
	Timeout ast.Node
	Body    []ast.Node

	// IsImmediate is set for a literal integer 0 timeout: a non-blocking
	// poll of the mailbox.
	IsImmediate bool
}

// ReceiveExpression is the extraction record for a receive construct.
type ReceiveExpression struct {
	Clauses []*CaseClause
	After   *AfterClause

	// IsBlocking is derived: blocking iff there is no after clause, or
	// the after clause is present but not immediate.
	IsBlocking bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsReceive reports whether the node is a receive construct.
func IsReceive(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "receive" && len(call.Args) == 1
}

// ExtractReceive converts a receive node into a ReceiveExpression record.
func ExtractReceive(n ast.Node, opts Options) (*ReceiveExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsReceive(n) {
		return nil, notKind("receive expression", n)
	}

	r := &ReceiveExpression{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	if body, ok := ast.KeywordGet(call.Args[0], "do"); ok {
		if clauses, ok := arrowClauses(body); ok {
			r.Clauses = extractCaseClauses(clauses, opts)
		}
	}

	if afterBody, ok := ast.KeywordGet(call.Args[0], "after"); ok {
		if clauses, ok := arrowClauses(afterBody); ok && len(clauses) > 0 && clauses[0] != nil && len(clauses[0].Args) == 2 {
			timeout := clauseCondition(clauses[0].Args[0])
			r.After = &AfterClause{
				Timeout:     timeout,
				Body:        normalizeBody(clauses[0].Args[1]),
				IsImmediate: isLiteralZero(timeout),
			}
		}
	}

	r.IsBlocking = r.After == nil || !r.After.IsImmediate
	r.Metadata["clause_count"] = len(r.Clauses)
	r.Metadata["is_blocking"] = r.IsBlocking
	return r, nil
}

func isLiteralZero(n ast.Node) bool {
	i, ok := n.(*ast.Integer)
	return ok && i.Value == 0
}

// TryExpression is the extraction record for a try construct. The
// presence flags of the three optional sections are independent, not
// mutually exclusive.
type TryExpression struct {
	Body          []ast.Node
	RescueClauses []*CaseClause
	CatchClauses  []*CaseClause
	ElseClauses   []*CaseClause
	AfterBody     []ast.Node

	HasRescue bool
	HasCatch  bool
	HasAfter  bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsTry reports whether the node is a try construct.
func IsTry(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "try" && len(call.Args) == 1
}

// ExtractTry converts a try node into a TryExpression record.
func ExtractTry(n ast.Node, opts Options) (*TryExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsTry(n) {
		return nil, notKind("try expression", n)
	}

	t := &TryExpression{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	sections := call.Args[0]
	if body, ok := ast.KeywordGet(sections, "do"); ok {
		t.Body = normalizeBody(body)
	}
	if rescueBody, ok := ast.KeywordGet(sections, "rescue"); ok {
		if clauses, ok := arrowClauses(rescueBody); ok {
			t.RescueClauses = extractCaseClauses(clauses, opts)
			t.HasRescue = true
		}
	}
	if catchBody, ok := ast.KeywordGet(sections, "catch"); ok {
		if clauses, ok := arrowClauses(catchBody); ok {
			t.CatchClauses = extractCaseClauses(clauses, opts)
			t.HasCatch = true
		}
	}
	if elseBody, ok := ast.KeywordGet(sections, "else"); ok {
		if clauses, ok := arrowClauses(elseBody); ok {
			t.ElseClauses = extractCaseClauses(clauses, opts)
		}
	}
	if afterBody, ok := ast.KeywordGet(sections, "after"); ok {
		t.AfterBody = normalizeBody(afterBody)
		t.HasAfter = true
	}

	t.Metadata["has_rescue"] = t.HasRescue
	t.Metadata["has_catch"] = t.HasCatch
	t.Metadata["has_after"] = t.HasAfter
	return t, nil
}

// RaiseKind classifies the four raise shapes.
type RaiseKind string

const (
	RaiseMessage              RaiseKind = "message"
	RaiseException            RaiseKind = "exception"
	RaiseExceptionWithOptions RaiseKind = "exception_with_options"
	RaiseReraise              RaiseKind = "reraise"
)

// RaiseExpression is the extraction record for a raise call.
type RaiseExpression struct {
	Kind RaiseKind

	Message   string
	Exception []string
	Options   ast.Node

	// Value is the re-raised exception variable or, for unrecognized
	// argument shapes, the raw argument.
	Value ast.Node

	// Stacktrace is the second argument of a two-argument reraise.
	Stacktrace ast.Node

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsRaise reports whether the node is a raise or reraise call.
func IsRaise(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && (call.Tag == "raise" || call.Tag == "reraise") && len(call.Args) >= 1
}

// ExtractRaise converts a raise node into a RaiseExpression record,
// classifying it into one of the four shapes.
func ExtractRaise(n ast.Node, opts Options) (*RaiseExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsRaise(n) {
		return nil, notKind("raise expression", n)
	}

	r := &RaiseExpression{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	first := call.Args[0]
	switch {
	case call.Tag == "reraise":
		// reraise keeps its shape regardless of arity: the usual form
		// carries the stacktrace as a second argument.
		r.Kind = RaiseReraise
		r.Value = first
		if len(call.Args) >= 2 {
			r.Stacktrace = call.Args[1]
		}
	case len(call.Args) >= 2:
		r.Kind = RaiseExceptionWithOptions
		if segments, ok := aliasSegments(first); ok {
			r.Exception = segments
		}
		r.Options = call.Args[1]
	default:
		switch v := first.(type) {
		case *ast.String:
			r.Kind = RaiseMessage
			r.Message = v.Value
		case *ast.Variable:
			r.Kind = RaiseReraise
			r.Value = v
		default:
			if segments, ok := aliasSegments(first); ok {
				r.Kind = RaiseException
				r.Exception = segments
			} else {
				r.Kind = RaiseReraise
				r.Value = first
			}
		}
	}

	r.Metadata["shape"] = string(r.Kind)
	return r, nil
}

// ThrowExpression is the extraction record for a throw call.
type ThrowExpression struct {
	Value ast.Node

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsThrow reports whether the node is a throw call.
func IsThrow(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "throw" && len(call.Args) == 1
}

// ExtractThrow converts a throw node into a ThrowExpression record.
func ExtractThrow(n ast.Node, opts Options) (*ThrowExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsThrow(n) {
		return nil, notKind("throw expression", n)
	}
	return &ThrowExpression{
		Value:    call.Args[0],
		Location: location(n, opts),
		Metadata: Metadata{},
	}, nil
}

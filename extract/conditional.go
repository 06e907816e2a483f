package extract

import (
	"github.com/c360studio/exast/ast"
)

// ConditionalKind distinguishes the three conditional constructs.
type ConditionalKind string

const (
	ConditionalIf     ConditionalKind = "if"
	ConditionalUnless ConditionalKind = "unless"
	ConditionalCond   ConditionalKind = "cond"
)

// CondClause is one condition/body clause of a cond construct.
type CondClause struct {
	Condition ast.Node
	Body      []ast.Node

	// IsCatchAll is set only when the condition is the literal boolean
	// true — an exact literal match, not any truthy value.
	IsCatchAll bool

	Malformed bool
}

// Conditional is the extraction record for if, unless, and cond.
// An unless condition is preserved as written: the extractor does not
// negate it, semantic negation is left to downstream consumers.
type Conditional struct {
	Kind ConditionalKind

	// Condition and the two branches apply to if/unless; Clauses applies
	// to cond.
	Condition ast.Node
	Then      []ast.Node
	Else      []ast.Node
	HasElse   bool
	Clauses   []CondClause

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsConditional reports whether the node is an if, unless, or cond
// construct.
func IsConditional(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	if !ok {
		return false
	}
	switch call.Tag {
	case "if", "unless":
		return len(call.Args) == 2
	case "cond":
		return len(call.Args) == 1
	}
	return false
}

// ExtractConditional converts an if, unless, or cond node into a
// Conditional record.
func ExtractConditional(n ast.Node, opts Options) (*Conditional, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsConditional(n) {
		return nil, notKind("conditional", n)
	}

	c := &Conditional{
		Kind:     ConditionalKind(call.Tag),
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	if call.Tag == "cond" {
		return extractCond(c, call, opts)
	}

	c.Condition = call.Args[0]
	if thenBody, ok := ast.KeywordGet(call.Args[1], "do"); ok {
		c.Then = normalizeBody(thenBody)
	}
	if elseBody, ok := ast.KeywordGet(call.Args[1], "else"); ok {
		c.Else = normalizeBody(elseBody)
		c.HasElse = true
	}
	c.Metadata["has_else"] = c.HasElse
	return c, nil
}

func extractCond(c *Conditional, call *ast.Call, opts Options) (*Conditional, error) {
	body, ok := ast.KeywordGet(call.Args[0], "do")
	if !ok {
		return nil, notKind("conditional", call)
	}
	clauses, ok := arrowClauses(body)
	if !ok {
		return nil, notKind("conditional", call)
	}

	for _, clause := range clauses {
		if clause == nil || len(clause.Args) != 2 {
			opts.logger().Warn("malformed cond clause, degrading",
				"node", ast.Render(call))
			c.Clauses = append(c.Clauses, CondClause{Malformed: true})
			continue
		}
		condition := clauseCondition(clause.Args[0])
		c.Clauses = append(c.Clauses, CondClause{
			Condition:  condition,
			Body:       normalizeBody(clause.Args[1]),
			IsCatchAll: isLiteralTrue(condition),
		})
	}

	c.Metadata["clause_count"] = len(c.Clauses)
	return c, nil
}

// clauseCondition unwraps the single-element condition list of a ->
// clause head.
func clauseCondition(n ast.Node) ast.Node {
	if list, ok := n.(*ast.List); ok && len(list.Elements) == 1 {
		return list.Elements[0]
	}
	return n
}

func isLiteralTrue(n ast.Node) bool {
	name, ok := ast.AtomName(n)
	return ok && name == "true"
}

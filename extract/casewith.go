package extract

import (
	"github.com/c360studio/exast/ast"
)

// CaseClause is one pattern/guard/body clause of a case-shaped construct.
// The pattern, guard, and body are kept as raw nodes; deep decomposition
// into Pattern records happens only when the caller requests it.
type CaseClause struct {
	Pattern ast.Node
	Guard   ast.Node
	Body    []ast.Node

	// PatternRecord is populated only under Options.IncludePatterns.
	PatternRecord *Pattern

	Malformed bool
}

// CaseExpression is the extraction record for a case construct.
type CaseExpression struct {
	Subject ast.Node
	Clauses []*CaseClause

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsCase reports whether the node is a case construct.
func IsCase(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "case" && len(call.Args) == 2
}

// ExtractCase converts a case node into a CaseExpression record. A
// malformed clause degrades to an empty clause marked malformed; its
// siblings extract normally.
func ExtractCase(n ast.Node, opts Options) (*CaseExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsCase(n) {
		return nil, notKind("case expression", n)
	}

	body, ok := ast.KeywordGet(call.Args[1], "do")
	if !ok {
		return nil, notKind("case expression", n)
	}
	clauses, ok := arrowClauses(body)
	if !ok {
		return nil, notKind("case expression", n)
	}

	c := &CaseExpression{
		Subject:  call.Args[0],
		Clauses:  extractCaseClauses(clauses, opts),
		Location: location(n, opts),
		Metadata: Metadata{},
	}
	c.Metadata["clause_count"] = len(c.Clauses)
	return c, nil
}

// extractCaseClauses decomposes -> clause nodes into pattern/guard/body
// triples, shared by case, receive, try, and with-else extraction.
func extractCaseClauses(clauses []*ast.Call, opts Options) []*CaseClause {
	out := make([]*CaseClause, 0, len(clauses))
	for _, clause := range clauses {
		if clause == nil || len(clause.Args) != 2 {
			opts.logger().Warn("malformed clause, degrading")
			out = append(out, &CaseClause{Malformed: true})
			continue
		}

		pattern := clauseCondition(clause.Args[0])
		cc := &CaseClause{
			Body: normalizeBody(clause.Args[1]),
		}

		// A guard shows up as a when-wrapped pattern.
		if when, ok := pattern.(*ast.Call); ok && when.Tag == "when" && len(when.Args) >= 2 {
			cc.Pattern = when.Args[0]
			cc.Guard = when.Args[len(when.Args)-1]
		} else {
			cc.Pattern = pattern
		}

		if opts.IncludePatterns {
			if rec, err := ExtractPattern(cc.Pattern); err == nil {
				cc.PatternRecord = rec
			}
		}
		out = append(out, cc)
	}
	return out
}

// WithClauseKind distinguishes the two clause forms of a with chain.
type WithClauseKind string

const (
	// WithMatch is a pattern <- expr clause: a failing match
	// short-circuits the chain into the else clauses.
	WithMatch WithClauseKind = "match"

	// WithBareMatch is a pattern = expr clause: a hard match whose
	// failure is fatal, not chain-breaking.
	WithBareMatch WithClauseKind = "bare_match"
)

// WithClause is one binding clause of a with chain.
type WithClause struct {
	Kind       WithClauseKind
	Pattern    ast.Node
	Expression ast.Node
	Malformed  bool
}

// WithExpression is the extraction record for a with construct. Clause
// order is the left-to-right evaluation order and is preserved exactly.
type WithExpression struct {
	Clauses     []WithClause
	Body        []ast.Node
	ElseClauses []*CaseClause
	HasElse     bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsWith reports whether the node is a with construct.
func IsWith(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "with" && len(call.Args) >= 1
}

// ExtractWith converts a with node into a WithExpression record.
func ExtractWith(n ast.Node, opts Options) (*WithExpression, error) {
	call, ok := n.(*ast.Call)
	if !ok || call.Tag != "with" || len(call.Args) == 0 {
		return nil, notKind("with expression", n)
	}

	w := &WithExpression{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	for i, arg := range call.Args {
		// The trailing keyword list carries the do body and else clauses.
		if i == len(call.Args)-1 && ast.IsKeywordList(arg) {
			if body, ok := ast.KeywordGet(arg, "do"); ok {
				w.Body = normalizeBody(body)
			}
			if elseBody, ok := ast.KeywordGet(arg, "else"); ok {
				if clauses, ok := arrowClauses(elseBody); ok {
					w.ElseClauses = extractCaseClauses(clauses, opts)
					w.HasElse = true
				}
			}
			continue
		}
		w.Clauses = append(w.Clauses, extractWithClause(arg))
	}

	w.Metadata["clause_count"] = len(w.Clauses)
	w.Metadata["has_else"] = w.HasElse
	return w, nil
}

func extractWithClause(n ast.Node) WithClause {
	if call, ok := n.(*ast.Call); ok && len(call.Args) == 2 {
		switch call.Tag {
		case "<-":
			return WithClause{Kind: WithMatch, Pattern: call.Args[0], Expression: call.Args[1]}
		case "=":
			return WithClause{Kind: WithBareMatch, Pattern: call.Args[0], Expression: call.Args[1]}
		}
	}
	// A bare expression clause evaluates for effect; it has no pattern.
	return WithClause{Kind: WithBareMatch, Expression: n}
}

package extract

import (
	"github.com/c360studio/exast/ast"
)

// ComprehensionClauseKind distinguishes the three clause forms preceding
// a comprehension's options.
type ComprehensionClauseKind string

const (
	ClauseGenerator          ComprehensionClauseKind = "generator"
	ClauseBitstringGenerator ComprehensionClauseKind = "bitstring_generator"
	ClauseFilter             ComprehensionClauseKind = "filter"
)

// ComprehensionClause is one generator or filter of a for construct.
// Generator clauses carry Pattern and Enumerable; filter clauses carry
// Expression.
type ComprehensionClause struct {
	Kind       ComprehensionClauseKind
	Pattern    ast.Node
	Enumerable ast.Node
	Expression ast.Node
}

// Comprehension is the extraction record for a for construct. Clause
// order is preserved exactly: left generators are outer loops, and a
// filter short-circuits at its position in the sequence.
type Comprehension struct {
	Clauses []ComprehensionClause
	Body    []ast.Node

	Into   ast.Node
	Reduce ast.Node
	Uniq   bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsComprehension reports whether the node is a for construct.
func IsComprehension(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "for" && len(call.Args) >= 1
}

// ExtractComprehension separates a for node's flat argument list into
// generators, bitstring generators, filters, and the trailing options
// (merged from possibly multiple keyword-list arguments).
func ExtractComprehension(n ast.Node, opts Options) (*Comprehension, error) {
	call, ok := n.(*ast.Call)
	if !ok || call.Tag != "for" || len(call.Args) == 0 {
		return nil, notKind("comprehension", n)
	}

	c := &Comprehension{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	generators := 0
	filters := 0
	for _, arg := range call.Args {
		if ast.IsKeywordList(arg) {
			c.applyOptions(arg)
			continue
		}

		clause := classifyComprehensionClause(arg)
		switch clause.Kind {
		case ClauseFilter:
			filters++
		default:
			generators++
		}
		c.Clauses = append(c.Clauses, clause)
	}

	c.Metadata["generator_count"] = generators
	c.Metadata["filter_count"] = filters
	return c, nil
}

func classifyComprehensionClause(n ast.Node) ComprehensionClause {
	if call, ok := n.(*ast.Call); ok {
		if call.Tag == "<-" && len(call.Args) == 2 {
			return ComprehensionClause{
				Kind:       ClauseGenerator,
				Pattern:    call.Args[0],
				Enumerable: call.Args[1],
			}
		}
		// A bitstring generator wraps its <- inside a binary node.
		if call.Tag == "<<>>" {
			for _, seg := range call.Args {
				if gen, ok := seg.(*ast.Call); ok && gen.Tag == "<-" && len(gen.Args) == 2 {
					return ComprehensionClause{
						Kind:       ClauseBitstringGenerator,
						Pattern:    gen.Args[0],
						Enumerable: gen.Args[1],
					}
				}
			}
		}
	}
	return ComprehensionClause{Kind: ClauseFilter, Expression: n}
}

func (c *Comprehension) applyOptions(kw ast.Node) {
	if body, ok := ast.KeywordGet(kw, "do"); ok {
		c.Body = normalizeBody(body)
	}
	if into, ok := ast.KeywordGet(kw, "into"); ok {
		c.Into = into
	}
	if reduce, ok := ast.KeywordGet(kw, "reduce"); ok {
		c.Reduce = reduce
	}
	if uniq, ok := ast.KeywordGet(kw, "uniq"); ok {
		if name, ok := ast.AtomName(uniq); ok && name == "true" {
			c.Uniq = true
		}
	}
}

package extract

import (
	"github.com/c360studio/exast/ast"
)

// Statement is one entry of a block with its 0-based index.
type Statement struct {
	Index int
	Node  ast.Node

	// IsImplicitReturn flags the last statement: its value is the block's
	// value.
	IsImplicitReturn bool
}

// Block is the extraction record for an ordered statement sequence.
type Block struct {
	Statements []Statement

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsBlock reports whether the node is an explicit statement block.
func IsBlock(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "__block__"
}

// ExtractBlock converts a node into a Block record. Any node is accepted:
// a non-block node is a single-statement block.
func ExtractBlock(n ast.Node, opts Options) (*Block, error) {
	if n == nil {
		return nil, notKind("block", n)
	}

	b := &Block{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	statements := normalizeBody(n)
	for i, stmt := range statements {
		b.Statements = append(b.Statements, Statement{
			Index:            i,
			Node:             stmt,
			IsImplicitReturn: i == len(statements)-1,
		})
	}

	b.Metadata["statement_count"] = len(b.Statements)
	return b, nil
}

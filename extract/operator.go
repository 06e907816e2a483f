package extract

import (
	"github.com/c360studio/exast/ast"
)

// OperatorCategory groups operator symbols into 9 categories.
type OperatorCategory string

const (
	OpArithmetic OperatorCategory = "arithmetic"
	OpComparison OperatorCategory = "comparison"
	OpBoolean    OperatorCategory = "boolean"
	OpList       OperatorCategory = "list"
	OpConcat     OperatorCategory = "concat"
	OpPipe       OperatorCategory = "pipe"
	OpMatch      OperatorCategory = "match"
	OpRange      OperatorCategory = "range"
	OpSpecial    OperatorCategory = "special"
)

// operatorCategories is the fixed symbol table driving classification.
var operatorCategories = map[string]OperatorCategory{
	"+": OpArithmetic, "-": OpArithmetic, "*": OpArithmetic, "/": OpArithmetic,

	"==": OpComparison, "!=": OpComparison, "===": OpComparison,
	"!==": OpComparison, "<": OpComparison, ">": OpComparison,
	"<=": OpComparison, ">=": OpComparison,

	"and": OpBoolean, "or": OpBoolean, "not": OpBoolean,
	"&&": OpBoolean, "||": OpBoolean, "!": OpBoolean,

	"++": OpList, "--": OpList, "in": OpList, "|": OpList,

	"<>": OpConcat,

	"|>": OpPipe,

	"=": OpMatch, "^": OpMatch, "<-": OpMatch, "\\\\": OpMatch,

	"..": OpRange, "..//": OpRange,

	"::": OpSpecial, "when": OpSpecial, "=>": OpSpecial,
	".": OpSpecial, "&": OpSpecial, "->": OpSpecial,
}

// Operator is the extraction record for an operator node.
type Operator struct {
	Symbol   string
	Category OperatorCategory
	Operands []ast.Node
	IsUnary  bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// ClassifyOperator looks up an operator symbol's category.
func ClassifyOperator(symbol string) (OperatorCategory, bool) {
	cat, ok := operatorCategories[symbol]
	return cat, ok
}

// IsOperator reports whether the node is an operator application.
func IsOperator(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	if !ok {
		return false
	}
	_, ok = operatorCategories[call.Tag]
	return ok && len(call.Args) >= 1 && len(call.Args) <= 2
}

// ExtractOperator converts an operator node into an Operator record.
func ExtractOperator(n ast.Node) (*Operator, error) {
	call, ok := n.(*ast.Call)
	if !ok {
		return nil, notKind("operator", n)
	}
	category, ok := ClassifyOperator(call.Tag)
	if !ok || len(call.Args) < 1 || len(call.Args) > 2 {
		return nil, notKind("operator", n)
	}

	return &Operator{
		Symbol:   call.Tag,
		Category: category,
		Operands: call.Args,
		IsUnary:  len(call.Args) == 1,
		Location: nodeLocation(n),
		Metadata: Metadata{"operand_count": len(call.Args)},
	}, nil
}

package extract

import (
	"github.com/c360studio/exast/ast"
)

// GuardCombinator classifies how a guard's sub-expressions are joined.
type GuardCombinator string

const (
	CombinatorNone  GuardCombinator = "none"
	CombinatorAnd   GuardCombinator = "and"
	CombinatorOr    GuardCombinator = "or"
	CombinatorMixed GuardCombinator = "mixed"
)

// Guard is the extraction record for a guard expression tree.
type Guard struct {
	// Expressions are the leaf expressions of the and/or tree, flattened
	// left-to-right depth-first.
	Expressions []ast.Node

	Combinator GuardCombinator

	// Functions are the known guard functions appearing anywhere in the
	// leaves, in first-occurrence order. Informational metadata only.
	Functions []string

	Location *ast.SourceLocation
	Metadata Metadata
}

// Known guard function tables. Membership is exact.
var (
	typeCheckGuards = map[string]struct{}{
		"is_atom": {}, "is_binary": {}, "is_bitstring": {}, "is_boolean": {},
		"is_float": {}, "is_function": {}, "is_integer": {}, "is_list": {},
		"is_map": {}, "is_map_key": {}, "is_nil": {}, "is_number": {},
		"is_pid": {}, "is_port": {}, "is_reference": {}, "is_tuple": {},
		"is_exception": {}, "is_struct": {},
	}
	comparisonGuards = map[string]struct{}{
		"==": {}, "!=": {}, "===": {}, "!==": {}, "<": {}, ">": {},
		"<=": {}, ">=": {},
	}
	arithmeticGuards = map[string]struct{}{
		"+": {}, "-": {}, "*": {}, "/": {}, "div": {}, "rem": {},
		"abs": {}, "ceil": {}, "floor": {}, "round": {}, "trunc": {},
	}
	otherGuards = map[string]struct{}{
		"hd": {}, "tl": {}, "length": {}, "map_size": {}, "tuple_size": {},
		"byte_size": {}, "bit_size": {}, "binary_part": {}, "elem": {},
		"node": {}, "self": {}, "in": {}, "not": {},
	}
)

func isKnownGuardFunction(name string) bool {
	if _, ok := typeCheckGuards[name]; ok {
		return true
	}
	if _, ok := comparisonGuards[name]; ok {
		return true
	}
	if _, ok := arithmeticGuards[name]; ok {
		return true
	}
	_, ok := otherGuards[name]
	return ok
}

// ExtractGuard decomposes a nested and/or boolean tree into a flat
// ordered list of leaf expressions and classifies the overall combinator.
// A single leaf is CombinatorNone; a tree using only and (or only or) is
// classified accordingly; a tree containing both anywhere is
// CombinatorMixed.
func ExtractGuard(expr ast.Node) (*Guard, error) {
	if expr == nil {
		return nil, notKind("guard expression", expr)
	}

	g := &Guard{
		Location: nodeLocation(expr),
		Metadata: Metadata{},
	}

	flattenGuard(expr, &g.Expressions)

	sawAnd := containsCombinator(expr, "and")
	sawOr := containsCombinator(expr, "or")
	switch {
	case sawAnd && sawOr:
		g.Combinator = CombinatorMixed
	case sawAnd:
		g.Combinator = CombinatorAnd
	case sawOr:
		g.Combinator = CombinatorOr
	default:
		g.Combinator = CombinatorNone
	}

	seen := make(map[string]struct{})
	for _, leaf := range g.Expressions {
		collectGuardFunctions(leaf, seen, &g.Functions)
	}

	g.Metadata["expression_count"] = len(g.Expressions)
	return g, nil
}

// flattenGuard unwinds an and/or tree left-to-right depth-first.
func flattenGuard(n ast.Node, out *[]ast.Node) {
	if call, ok := n.(*ast.Call); ok && (call.Tag == "and" || call.Tag == "or") && len(call.Args) == 2 {
		flattenGuard(call.Args[0], out)
		flattenGuard(call.Args[1], out)
		return
	}
	*out = append(*out, n)
}

// containsCombinator reports whether the combinator appears anywhere in
// the and/or spine of the tree. It does not descend into leaf call
// arguments: a nested `a and b` inside a function argument is an
// expression, not a guard combinator.
func containsCombinator(n ast.Node, combinator string) bool {
	call, ok := n.(*ast.Call)
	if !ok || (call.Tag != "and" && call.Tag != "or") || len(call.Args) != 2 {
		return false
	}
	if call.Tag == combinator {
		return true
	}
	return containsCombinator(call.Args[0], combinator) ||
		containsCombinator(call.Args[1], combinator)
}

// collectGuardFunctions gathers known guard function names from a leaf,
// recursing into call arguments as well as the top-level call tag.
func collectGuardFunctions(n ast.Node, seen map[string]struct{}, out *[]string) {
	call, ok := n.(*ast.Call)
	if !ok {
		return
	}
	if isKnownGuardFunction(call.Tag) {
		if _, dup := seen[call.Tag]; !dup {
			seen[call.Tag] = struct{}{}
			*out = append(*out, call.Tag)
		}
	}
	for _, arg := range call.Args {
		collectGuardFunctions(arg, seen, out)
	}
}

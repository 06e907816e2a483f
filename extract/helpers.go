package extract

import (
	"github.com/c360studio/exast/ast"
)

// Metadata is the open map of derived, extractor-specific facts carried by
// every record. Keeping facts here lets the core record shapes stay stable
// while the facts vary per extractor.
type Metadata map[string]any

// specialForms is the fixed set of tags that must never be misclassified
// as an ordinary variable, call, or literal pattern data merely because
// they share the 3-part tagged node shape. Membership is exact; the table
// is inherited from the source grammar's self-quoting ambiguity and is
// deliberately not "fixed" beyond preserving it.
var specialForms = map[string]struct{}{
	// block and structure markers
	"__block__": {}, "__aliases__": {}, "__MODULE__": {}, "__DIR__": {},
	"__ENV__": {}, "__CALLER__": {}, "__STACKTRACE__": {},
	// definition forms
	"def": {}, "defp": {}, "defmacro": {}, "defmacrop": {},
	"defmodule": {}, "defstruct": {}, "defexception": {},
	"defprotocol": {}, "defimpl": {}, "defdelegate": {},
	"defguard": {}, "defguardp": {}, "defoverridable": {},
	// control flow keywords
	"if": {}, "unless": {}, "cond": {}, "case": {}, "with": {},
	"for": {}, "receive": {}, "try": {}, "raise": {}, "reraise": {},
	"throw": {}, "fn": {}, "do": {}, "else": {}, "rescue": {},
	"catch": {}, "after": {},
	// directive keywords
	"import": {}, "require": {}, "alias": {}, "use": {},
	"quote": {}, "unquote": {}, "unquote_splicing": {}, "super": {},
	// operators sharing the tagged shape
	"when": {}, "and": {}, "or": {}, "not": {}, "in": {},
	"=": {}, "^": {}, "&": {}, "|>": {}, "::": {}, "<-": {},
	"\\\\": {}, "=>": {}, "|": {}, ".": {}, "..": {}, "..//": {},
	"<<>>": {}, "%{}": {}, "%": {}, "{}": {}, "->": {}, "@": {},
}

// isSpecialForm reports whether the tag belongs to the special-forms
// exclusion set.
func isSpecialForm(tag string) bool {
	_, ok := specialForms[tag]
	return ok
}

// normalizeBody flattens a body into its ordered statement list: a
// __block__ node yields its arguments, nil yields nil, and any other node
// is a single-statement body.
func normalizeBody(n ast.Node) []ast.Node {
	if n == nil {
		return nil
	}
	if call, ok := n.(*ast.Call); ok && call.Tag == "__block__" {
		return call.Args
	}
	return []ast.Node{n}
}

// blockArg returns the value bound to key in a definition's trailing
// keyword-list argument (the do/else/rescue/... block), searching the
// argument list right to left.
func blockArg(args []ast.Node, key string) (ast.Node, bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if v, ok := ast.KeywordGet(args[i], key); ok {
			return v, true
		}
	}
	return nil, false
}

// aliasSegments resolves a module reference node into ordered name
// segments. Multi-segment alias nodes and bare single-atom names (Erlang
// modules) are both supported.
func aliasSegments(n ast.Node) ([]string, bool) {
	switch v := n.(type) {
	case *ast.Call:
		if v.Tag != "__aliases__" {
			return nil, false
		}
		segments := make([]string, 0, len(v.Args))
		for _, arg := range v.Args {
			name, ok := ast.AtomName(arg)
			if !ok {
				return nil, false
			}
			segments = append(segments, name)
		}
		return segments, true
	case *ast.Atom:
		return []string{v.Name}, true
	default:
		return nil, false
	}
}

// attribute unwraps a module attribute node (@name value) into its name
// and value. The value is nil for bare attribute reads.
func attribute(n ast.Node) (string, ast.Node, bool) {
	call, ok := n.(*ast.Call)
	if !ok || call.Tag != "@" || len(call.Args) != 1 {
		return "", nil, false
	}
	inner, ok := call.Args[0].(*ast.Call)
	if !ok {
		return "", nil, false
	}
	if len(inner.Args) == 0 {
		return inner.Tag, nil, true
	}
	return inner.Tag, inner.Args[0], true
}

// Derive is one protocol named by a derive directive, with its verbatim
// (never evaluated) option list.
type Derive struct {
	Protocol []string
	Options  ast.Node
}

// ParseDeriveDirective parses a derive directive value into protocol and
// option pairs. Single protocol references, {protocol, options} tuples,
// and lists mixing both forms are all accepted; unrecognized entries are
// skipped.
func ParseDeriveDirective(value ast.Node) []Derive {
	if value == nil {
		return nil
	}
	if list, ok := value.(*ast.List); ok {
		var derives []Derive
		for _, el := range list.Elements {
			if d, ok := parseDeriveEntry(el); ok {
				derives = append(derives, d)
			}
		}
		return derives
	}
	if d, ok := parseDeriveEntry(value); ok {
		return []Derive{d}
	}
	return nil
}

func parseDeriveEntry(n ast.Node) (Derive, bool) {
	if tuple, ok := n.(*ast.Tuple); ok && len(tuple.Elements) == 2 {
		if protocol, ok := aliasSegments(tuple.Elements[0]); ok {
			return Derive{Protocol: protocol, Options: tuple.Elements[1]}, true
		}
		return Derive{}, false
	}
	if protocol, ok := aliasSegments(n); ok {
		return Derive{Protocol: protocol}, true
	}
	return Derive{}, false
}

// arrowClauses returns the clause nodes of a do-block value: a list of
// -> nodes as stored under do:/else:/rescue:/catch: keys of multi-clause
// constructs.
func arrowClauses(n ast.Node) ([]*ast.Call, bool) {
	list, ok := n.(*ast.List)
	if !ok {
		return nil, false
	}
	clauses := make([]*ast.Call, 0, len(list.Elements))
	for _, el := range list.Elements {
		call, ok := el.(*ast.Call)
		if !ok || call.Tag != "->" {
			// Preserve positional slots so malformed entries can degrade
			// rather than shifting their siblings.
			clauses = append(clauses, nil)
			continue
		}
		clauses = append(clauses, call)
	}
	return clauses, true
}

// NameArity identifies a function or callback by name and arity.
type NameArity struct {
	Name  string
	Arity int
}

// nameArityPairs parses a keyword list of name: arity entries, the shape
// used by import only:/except: options and optional_callbacks.
func nameArityPairs(n ast.Node) []NameArity {
	pairs, ok := ast.KeywordPairs(n)
	if !ok {
		return nil
	}
	out := make([]NameArity, 0, len(pairs))
	for _, p := range pairs {
		name, ok := ast.AtomName(p.Key)
		if !ok {
			continue
		}
		arity, ok := p.Value.(*ast.Integer)
		if !ok {
			continue
		}
		out = append(out, NameArity{Name: name, Arity: int(arity.Value)})
	}
	return out
}

// location derives an optional SourceLocation from a node, honoring the
// caller's location preference.
func location(n ast.Node, opts Options) *ast.SourceLocation {
	if !opts.IncludeLocations {
		return nil
	}
	loc, ok := ast.NodeLocation(n)
	if !ok {
		return nil
	}
	return &loc
}

// nodeLocation derives an optional SourceLocation unconditionally, for
// the simple extractors that take no options record.
func nodeLocation(n ast.Node) *ast.SourceLocation {
	loc, ok := ast.NodeLocation(n)
	if !ok {
		return nil
	}
	return &loc
}

// containsCallTo reports whether any node in the forest is a call to the
// named local function or macro.
func containsCallTo(nodes []ast.Node, name string) bool {
	for _, n := range nodes {
		found := false
		Walk(n, func(child ast.Node) bool {
			if call, ok := child.(*ast.Call); ok && call.Tag == name {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}

package extract

import (
	"github.com/c360studio/exast/ast"
)

// PatternKind classifies a match pattern into one of the 10 pattern kinds.
type PatternKind string

const (
	PatternVariable PatternKind = "variable"
	PatternWildcard PatternKind = "wildcard"
	PatternPin      PatternKind = "pin"
	PatternLiteral  PatternKind = "literal"
	PatternTuple    PatternKind = "tuple"
	PatternList     PatternKind = "list"
	PatternMap      PatternKind = "map"
	PatternStruct   PatternKind = "struct"
	PatternBinary   PatternKind = "binary"
	PatternAs       PatternKind = "as"
)

// Pattern is the extraction record for a match pattern.
type Pattern struct {
	Kind PatternKind
	Node ast.Node

	// Name is the bound or referenced variable name for variable and pin
	// patterns, and the struct name for struct patterns (joined segments
	// live in Metadata).
	Name string

	// Guard is the guard expression when the pattern was wrapped in a
	// when node; the record then describes the inner pattern.
	Guard ast.Node

	// Elements holds the raw structural sub-patterns: tuple/list elements,
	// map value positions, binary segments, or the two sides of an
	// as-pattern.
	Elements []ast.Node

	// Bindings are the variables the pattern binds, deduplicated in
	// first-occurrence order.
	Bindings []string

	Location *ast.SourceLocation
	Metadata Metadata
}

// ClassifyPattern determines which pattern kind a node belongs to, or
// reports false for nodes that cannot appear as patterns. The order is
// shape-overlap-sensitive and must not be rearranged: wildcard before
// variable, pin and when and as before generic calls, struct before map,
// and the special-form exclusion applied before the bare-tuple reading.
func ClassifyPattern(n ast.Node) (PatternKind, bool) {
	switch v := n.(type) {
	case *ast.Variable:
		if v.Name == "_" {
			return PatternWildcard, true
		}
		if isSpecialForm(v.Name) {
			return "", false
		}
		return PatternVariable, true
	case *ast.Call:
		switch v.Tag {
		case "^":
			return PatternPin, true
		case "when":
			// Guard wrapper: the pattern is the first argument. A when
			// with fewer than 2 args has no pattern/guard split and is
			// not a pattern; the arity here must stay in step with the
			// unwrap in ExtractPattern.
			return classifyInner(v.Args)
		case "=":
			return PatternAs, true
		case "%":
			return PatternStruct, true
		case "%{}":
			return PatternMap, true
		case "<<>>":
			return PatternBinary, true
		case "{}":
			return PatternTuple, true
		case "|":
			return PatternList, true
		}
		return "", false
	case *ast.Atom, *ast.Integer, *ast.Float, *ast.String:
		return PatternLiteral, true
	case *ast.Map:
		return PatternMap, true
	case *ast.Tuple:
		if isSimpleTuple(v) {
			return PatternTuple, true
		}
		return "", false
	case *ast.List:
		return PatternList, true
	default:
		return "", false
	}
}

func classifyInner(args []ast.Node) (PatternKind, bool) {
	if len(args) < 2 {
		return "", false
	}
	return ClassifyPattern(args[0])
}

// ExtractPattern converts a pattern node into a Pattern record. A when
// wrapper is unwrapped: the record describes the inner pattern and
// carries the guard expression.
func ExtractPattern(n ast.Node) (*Pattern, error) {
	var guard ast.Node
	target := n
	if call, ok := n.(*ast.Call); ok && call.Tag == "when" && len(call.Args) >= 2 {
		target = call.Args[0]
		guard = call.Args[len(call.Args)-1]
	}

	kind, ok := ClassifyPattern(target)
	if !ok {
		return nil, notKind("pattern", n)
	}

	p := &Pattern{
		Kind:     kind,
		Node:     target,
		Guard:    guard,
		Bindings: CollectBindings([]ast.Node{target}),
		Location: nodeLocation(n),
		Metadata: Metadata{},
	}

	switch kind {
	case PatternVariable:
		p.Name = target.(*ast.Variable).Name
	case PatternPin:
		call := target.(*ast.Call)
		if len(call.Args) == 1 {
			if v, ok := call.Args[0].(*ast.Variable); ok {
				p.Name = v.Name
			}
		}
	case PatternAs:
		p.Elements = target.(*ast.Call).Args
	case PatternStruct:
		call := target.(*ast.Call)
		if len(call.Args) == 2 {
			if segments, ok := aliasSegments(call.Args[0]); ok {
				p.Metadata["struct"] = segments
				if len(segments) > 0 {
					p.Name = segments[len(segments)-1]
				}
			}
			p.Elements = structPatternValues(call.Args[1])
		}
	case PatternMap:
		p.Elements = mapPatternValues(target)
	case PatternBinary:
		p.Elements = target.(*ast.Call).Args
	case PatternTuple:
		switch v := target.(type) {
		case *ast.Tuple:
			p.Elements = v.Elements
		case *ast.Call:
			p.Elements = v.Args
		}
	case PatternList:
		switch v := target.(type) {
		case *ast.List:
			p.Elements = v.Elements
		case *ast.Call:
			// Cons cell head|tail.
			p.Elements = v.Args
		}
	}

	p.Metadata["binding_count"] = len(p.Bindings)
	if guard != nil {
		p.Metadata["guarded"] = true
	}
	return p, nil
}

func mapPatternValues(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Map:
		values := make([]ast.Node, 0, len(v.Pairs))
		for _, pair := range v.Pairs {
			values = append(values, pair.Value)
		}
		return values
	case *ast.Call:
		values := make([]ast.Node, 0, len(v.Args))
		for _, pair := range mapCallPairs(v) {
			values = append(values, pair.Value)
		}
		return values
	default:
		return nil
	}
}

func structPatternValues(n ast.Node) []ast.Node {
	return mapPatternValues(n)
}

// CollectBindings walks pattern nodes and returns every variable they
// bind, deduplicated in first-occurrence order. Wildcards and pinned
// variables yield no bindings: a pin references an existing value, it
// does not bind. Map and struct keys are never binding sites; values are.
// This collector is the single shared algorithm reused by parameter and
// anonymous-function extraction.
func CollectBindings(nodes []ast.Node) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, n := range nodes {
		collectBindings(n, seen, &out)
	}
	return out
}

func collectBindings(n ast.Node, seen map[string]struct{}, out *[]string) {
	switch v := n.(type) {
	case *ast.Variable:
		if v.Name == "_" || isSpecialForm(v.Name) {
			return
		}
		if _, dup := seen[v.Name]; dup {
			return
		}
		seen[v.Name] = struct{}{}
		*out = append(*out, v.Name)
	case *ast.Tuple:
		for _, el := range v.Elements {
			collectBindings(el, seen, out)
		}
	case *ast.List:
		for _, el := range v.Elements {
			collectBindings(el, seen, out)
		}
	case *ast.Map:
		for _, pair := range v.Pairs {
			collectBindings(pair.Value, seen, out)
		}
	case *ast.Call:
		switch v.Tag {
		case "^":
			// References, not bindings.
		case "=":
			// As-pattern: union of both sides.
			for _, arg := range v.Args {
				collectBindings(arg, seen, out)
			}
		case "when":
			// Only the pattern side binds.
			if len(v.Args) > 0 {
				collectBindings(v.Args[0], seen, out)
			}
		case "%":
			if len(v.Args) == 2 {
				for _, value := range structPatternValues(v.Args[1]) {
					collectBindings(value, seen, out)
				}
			}
		case "%{}":
			for _, pair := range mapCallPairs(v) {
				collectBindings(pair.Value, seen, out)
			}
		case "<<>>":
			for _, seg := range v.Args {
				// A segment pattern binds before any :: specifier.
				if spec, ok := seg.(*ast.Call); ok && spec.Tag == "::" && len(spec.Args) > 0 {
					collectBindings(spec.Args[0], seen, out)
					continue
				}
				collectBindings(seg, seen, out)
			}
		case "{}", "|":
			for _, arg := range v.Args {
				collectBindings(arg, seen, out)
			}
		}
	}
}

package extract

import (
	"strings"

	"github.com/c360studio/exast/ast"
)

// LiteralKind classifies a literal node into one of the 12 literal kinds.
type LiteralKind string

const (
	LiteralAtom        LiteralKind = "atom"
	LiteralInteger     LiteralKind = "integer"
	LiteralFloat       LiteralKind = "float"
	LiteralString      LiteralKind = "string"
	LiteralList        LiteralKind = "list"
	LiteralTuple       LiteralKind = "tuple"
	LiteralMap         LiteralKind = "map"
	LiteralKeywordList LiteralKind = "keyword_list"
	LiteralBinary      LiteralKind = "binary"
	LiteralCharlist    LiteralKind = "charlist"
	LiteralSigil       LiteralKind = "sigil"
	LiteralRange       LiteralKind = "range"
)

// RangeBounds holds a range literal's bounds and step. When the bounds
// are integer literals the step is materialized; otherwise the bounds are
// kept as unevaluated expressions — the extractor restructures syntax, it
// never evaluates it.
type RangeBounds struct {
	Start ast.Node
	End   ast.Node
	Step  ast.Node

	// Materialized values, valid only when IsLiteral is true.
	StartValue int64
	EndValue   int64
	StepValue  int64
	IsLiteral  bool
}

// SigilInfo describes a sigil literal.
type SigilInfo struct {
	Name      string // single-letter sigil name, e.g. "r" for ~r
	Content   ast.Node
	Modifiers string
	Delimiter string
}

// Literal is the extraction record for a literal node. Kind-specific
// fields are populated per kind; the rest stay zero.
type Literal struct {
	Kind LiteralKind
	Node ast.Node

	Atom     string
	Int      int64
	Float    float64
	Str      string
	Elements []ast.Node // list/tuple elements and binary segments
	Pairs    []ast.Pair // map and keyword-list entries
	Range    *RangeBounds
	Sigil    *SigilInfo

	Location *ast.SourceLocation
	Metadata Metadata
}

// ClassifyLiteral determines which literal kind a node belongs to, or
// reports false when it is not a literal. Precedence follows the grammar's
// shape overlaps: scalars first, then tag-discriminated structural forms,
// then the keyword-list/list/tuple ambiguity resolved in that order.
func ClassifyLiteral(n ast.Node) (LiteralKind, bool) {
	switch v := n.(type) {
	case *ast.Atom:
		return LiteralAtom, true
	case *ast.Integer:
		return LiteralInteger, true
	case *ast.Float:
		return LiteralFloat, true
	case *ast.String:
		return LiteralString, true
	case *ast.Map:
		return LiteralMap, true
	case *ast.Call:
		switch {
		case v.Tag == "sigil_c":
			return LiteralCharlist, true
		case strings.HasPrefix(v.Tag, "sigil_") && len(v.Tag) > len("sigil_"):
			return LiteralSigil, true
		case (v.Tag == ".." || v.Tag == "..//") && (len(v.Args) == 2 || len(v.Args) == 3):
			return LiteralRange, true
		case v.Tag == "%{}":
			return LiteralMap, true
		case v.Tag == "<<>>" && containsInterpolation(v.Args):
			// An interpolated string quotes to the binary shape with a
			// to_string sub-node per interpolation slot.
			return LiteralString, true
		case v.Tag == "<<>>":
			return LiteralBinary, true
		case v.Tag == "{}":
			return LiteralTuple, true
		}
		return "", false
	case *ast.List:
		if ast.IsKeywordList(n) {
			return LiteralKeywordList, true
		}
		return LiteralList, true
	case *ast.Tuple:
		if isSimpleTuple(v) {
			return LiteralTuple, true
		}
		return "", false
	default:
		return "", false
	}
}

// isSimpleTuple reports whether a bare tuple can be read as literal tuple
// data. A bare 2-tuple is ambiguous with the tagged node shape; tuples
// whose first element is an atom naming a special form are excluded from
// the literal interpretation.
func isSimpleTuple(t *ast.Tuple) bool {
	if len(t.Elements) != 2 {
		return true
	}
	if name, ok := ast.AtomName(t.Elements[0]); ok && isSpecialForm(name) {
		return false
	}
	return true
}

// containsInterpolation detects the "to_string from interpolation"
// sub-shape inside a binary node's segments.
func containsInterpolation(args []ast.Node) bool {
	for _, arg := range args {
		seg, ok := arg.(*ast.Call)
		if !ok || seg.Tag != "::" || len(seg.Args) == 0 {
			continue
		}
		if rc, ok := seg.Args[0].(*ast.RemoteCall); ok && rc.Function == "to_string" {
			return true
		}
	}
	return false
}

// ExtractLiteral converts a literal node into a Literal record. A node
// matching none of the 12 kinds yields a *KindError.
func ExtractLiteral(n ast.Node) (*Literal, error) {
	kind, ok := ClassifyLiteral(n)
	if !ok {
		return nil, notKind("literal", n)
	}

	lit := &Literal{
		Kind:     kind,
		Node:     n,
		Location: nodeLocation(n),
		Metadata: Metadata{},
	}

	switch kind {
	case LiteralAtom:
		lit.Atom = n.(*ast.Atom).Name
	case LiteralInteger:
		lit.Int = n.(*ast.Integer).Value
	case LiteralFloat:
		lit.Float = n.(*ast.Float).Value
	case LiteralString:
		if s, ok := n.(*ast.String); ok {
			lit.Str = s.Value
		} else {
			// Interpolated: keep the segments, flag the interpolation.
			call := n.(*ast.Call)
			lit.Elements = call.Args
			lit.Metadata["interpolated"] = true
		}
	case LiteralList:
		lit.Elements = n.(*ast.List).Elements
		lit.Metadata["length"] = len(lit.Elements)
	case LiteralKeywordList:
		lit.Pairs, _ = ast.KeywordPairs(n)
		lit.Metadata["length"] = len(lit.Pairs)
	case LiteralTuple:
		switch v := n.(type) {
		case *ast.Tuple:
			lit.Elements = v.Elements
		case *ast.Call:
			lit.Elements = v.Args
		}
		lit.Metadata["size"] = len(lit.Elements)
	case LiteralMap:
		switch v := n.(type) {
		case *ast.Map:
			lit.Pairs = v.Pairs
		case *ast.Call:
			lit.Pairs = mapCallPairs(v)
		}
		lit.Metadata["size"] = len(lit.Pairs)
	case LiteralBinary:
		lit.Elements = n.(*ast.Call).Args
		lit.Metadata["segments"] = len(lit.Elements)
	case LiteralCharlist, LiteralSigil:
		lit.Sigil = extractSigil(n.(*ast.Call))
	case LiteralRange:
		lit.Range = extractRange(n.(*ast.Call))
	}

	return lit, nil
}

// mapCallPairs reads the pairs of a %{}-tagged map node, where each
// argument is either a key-value 2-tuple or a => node.
func mapCallPairs(call *ast.Call) []ast.Pair {
	pairs := make([]ast.Pair, 0, len(call.Args))
	for _, arg := range call.Args {
		switch v := arg.(type) {
		case *ast.Tuple:
			if len(v.Elements) == 2 {
				pairs = append(pairs, ast.Pair{Key: v.Elements[0], Value: v.Elements[1]})
			}
		case *ast.Call:
			if v.Tag == "=>" && len(v.Args) == 2 {
				pairs = append(pairs, ast.Pair{Key: v.Args[0], Value: v.Args[1]})
			}
		}
	}
	return pairs
}

func extractSigil(call *ast.Call) *SigilInfo {
	info := &SigilInfo{
		Name:      strings.TrimPrefix(call.Tag, "sigil_"),
		Delimiter: call.Meta.Delimiter,
	}
	if len(call.Args) > 0 {
		info.Content = call.Args[0]
	}
	if len(call.Args) > 1 {
		if mods, ok := call.Args[1].(*ast.List); ok {
			var b strings.Builder
			for _, m := range mods.Elements {
				if i, ok := m.(*ast.Integer); ok {
					b.WriteByte(byte(i.Value))
				}
			}
			info.Modifiers = b.String()
		}
	}
	return info
}

// extractRange materializes integer-bounded ranges and keeps everything
// else as an unevaluated expression triple. The default step is inclusive:
// +1 ascending, -1 when the end is below the start.
func extractRange(call *ast.Call) *RangeBounds {
	r := &RangeBounds{
		Start: call.Args[0],
		End:   call.Args[1],
	}
	if len(call.Args) == 3 {
		r.Step = call.Args[2]
	}

	start, startOK := r.Start.(*ast.Integer)
	end, endOK := r.End.(*ast.Integer)
	if !startOK || !endOK {
		return r
	}

	var step int64
	switch {
	case r.Step != nil:
		s, ok := r.Step.(*ast.Integer)
		if !ok {
			return r
		}
		step = s.Value
	case end.Value < start.Value:
		step = -1
	default:
		step = 1
	}

	r.StartValue = start.Value
	r.EndValue = end.Value
	r.StepValue = step
	r.IsLiteral = true
	return r
}

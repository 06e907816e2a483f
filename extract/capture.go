package extract

import (
	"sort"

	"github.com/c360studio/exast/ast"
)

// CaptureKind distinguishes the three mutually exclusive capture shapes.
type CaptureKind string

const (
	CaptureLocal     CaptureKind = "local"
	CaptureRemote    CaptureKind = "remote"
	CaptureShorthand CaptureKind = "shorthand"
)

// Capture is the extraction record for a function capture.
type Capture struct {
	Kind CaptureKind

	// Name and Module identify named captures; Module is empty for local
	// ones.
	Name   string
	Module []string

	// Arity is the declared arity for named captures, or the highest
	// placeholder number for shorthand captures (0 when no placeholder
	// appears).
	Arity int

	// Expression is the shorthand capture's body.
	Expression ast.Node

	Location *ast.SourceLocation
	Metadata Metadata
}

// PlaceholderAnalysis groups placeholder occurrences of a shorthand
// capture by position. Gaps are positions below the highest placeholder
// that are never referenced; a gap is a data-quality signal, not an
// error.
type PlaceholderAnalysis struct {
	Highest int

	// Usages maps each referenced position to its occurrence count.
	Usages map[int]int

	Gaps    []int
	HasGaps bool
}

// IsCapture reports whether the node is a capture expression.
func IsCapture(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "&" && len(call.Args) == 1
}

// ExtractCapture converts a capture node into a Capture record,
// classifying it as named-local, named-remote, or shorthand.
func ExtractCapture(n ast.Node) (*Capture, error) {
	call, ok := n.(*ast.Call)
	if !ok || !IsCapture(n) {
		return nil, notKind("capture", n)
	}

	c := &Capture{
		Location: nodeLocation(n),
		Metadata: Metadata{},
	}

	// Named captures are a / node pairing a function reference with an
	// integer arity.
	if slash, ok := call.Args[0].(*ast.Call); ok && slash.Tag == "/" && len(slash.Args) == 2 {
		if arity, ok := slash.Args[1].(*ast.Integer); ok {
			switch ref := slash.Args[0].(type) {
			case *ast.Variable:
				c.Kind = CaptureLocal
				c.Name = ref.Name
				c.Arity = int(arity.Value)
				return c, nil
			case *ast.Call:
				if !isSpecialForm(ref.Tag) && len(ref.Args) == 0 {
					c.Kind = CaptureLocal
					c.Name = ref.Tag
					c.Arity = int(arity.Value)
					return c, nil
				}
			case *ast.RemoteCall:
				if segments, ok := aliasSegments(ref.Receiver); ok {
					c.Kind = CaptureRemote
					c.Module = segments
					c.Name = ref.Function
					c.Arity = int(arity.Value)
					return c, nil
				}
			}
		}
	}

	c.Kind = CaptureShorthand
	c.Expression = call.Args[0]
	analysis := AnalyzePlaceholders(c.Expression)
	c.Arity = analysis.Highest
	c.Metadata["has_gaps"] = analysis.HasGaps
	return c, nil
}

// AnalyzePlaceholders discovers the numbered placeholders of a shorthand
// capture body. Discovery does not descend into a nested capture's own
// content: nested captures are separate top-level units.
func AnalyzePlaceholders(expr ast.Node) *PlaceholderAnalysis {
	a := &PlaceholderAnalysis{Usages: make(map[int]int)}
	collectPlaceholders(expr, a)

	for pos := 1; pos < a.Highest; pos++ {
		if _, used := a.Usages[pos]; !used {
			a.Gaps = append(a.Gaps, pos)
		}
	}
	sort.Ints(a.Gaps)
	a.HasGaps = len(a.Gaps) > 0
	return a
}

func collectPlaceholders(n ast.Node, a *PlaceholderAnalysis) {
	call, isCall := n.(*ast.Call)
	if isCall && call.Tag == "&" && len(call.Args) == 1 {
		if pos, ok := call.Args[0].(*ast.Integer); ok {
			p := int(pos.Value)
			a.Usages[p]++
			if p > a.Highest {
				a.Highest = p
			}
			return
		}
		// Nested capture: its placeholders belong to it, not to us.
		return
	}
	for _, child := range children(n) {
		collectPlaceholders(child, a)
	}
}

package extract

import (
	"strings"

	"github.com/c360studio/exast/ast"
)

// ParameterKind classifies a function parameter.
type ParameterKind string

const (
	ParamSimple  ParameterKind = "simple"
	ParamDefault ParameterKind = "default"
	ParamPattern ParameterKind = "pattern"
	ParamPin     ParameterKind = "pin"
)

// Parameter is the extraction record for one function parameter.
type Parameter struct {
	Kind     ParameterKind
	Name     string
	Position int

	// Default is the verbatim default value expression for default
	// parameters; never evaluated.
	Default ast.Node

	// PatternKind sub-classifies pattern parameters using the pattern
	// extractor's table.
	PatternKind PatternKind

	// IsIgnored is set when the name starts with an underscore or is
	// exactly the wildcard.
	IsIgnored bool

	Bindings []string
	Node     ast.Node
	Location *ast.SourceLocation
	Metadata Metadata
}

// ExtractParameter classifies a single parameter node at the given
// 0-based position.
func ExtractParameter(n ast.Node, position int) (*Parameter, error) {
	p := &Parameter{
		Position: position,
		Node:     n,
		Location: nodeLocation(n),
		Metadata: Metadata{},
	}

	switch v := n.(type) {
	case *ast.Variable:
		p.Kind = ParamSimple
		p.Name = v.Name
	case *ast.Call:
		switch v.Tag {
		case "\\\\":
			if len(v.Args) != 2 {
				return nil, notKind("parameter", n)
			}
			p.Kind = ParamDefault
			p.Default = v.Args[1]
			// The name comes from the left side regardless of its own
			// structural complexity.
			p.Name = parameterName(v.Args[0])
		case "^":
			p.Kind = ParamPin
			if len(v.Args) == 1 {
				if pinned, ok := v.Args[0].(*ast.Variable); ok {
					p.Name = pinned.Name
				}
			}
		default:
			kind, ok := ClassifyPattern(n)
			if !ok {
				return nil, notKind("parameter", n)
			}
			p.Kind = ParamPattern
			p.PatternKind = kind
		}
	default:
		kind, ok := ClassifyPattern(n)
		if !ok {
			return nil, notKind("parameter", n)
		}
		p.Kind = ParamPattern
		p.PatternKind = kind
	}

	p.Bindings = CollectBindings([]ast.Node{n})
	p.IsIgnored = p.Name == "_" || strings.HasPrefix(p.Name, "_")
	return p, nil
}

// parameterName extracts a display name from the left side of a default
// parameter: the variable name, the pinned variable's name, or the first
// binding of a structural pattern.
func parameterName(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Variable:
		return v.Name
	case *ast.Call:
		if v.Tag == "^" && len(v.Args) == 1 {
			if pinned, ok := v.Args[0].(*ast.Variable); ok {
				return pinned.Name
			}
		}
	}
	if bindings := CollectBindings([]ast.Node{n}); len(bindings) > 0 {
		return bindings[0]
	}
	return ""
}

// ExtractParameters bulk-extracts a parameter list, assigning 0-based
// positions. A parameter that fails to classify is skipped and logged;
// partial lists are an expected outcome, not an error for the whole
// function.
func ExtractParameters(nodes []ast.Node, opts Options) []*Parameter {
	params := make([]*Parameter, 0, len(nodes))
	for i, n := range nodes {
		p, err := ExtractParameter(n, i)
		if err != nil {
			opts.logger().Warn("skipping unclassifiable parameter",
				"position", i,
				"node", ast.Render(n))
			continue
		}
		params = append(params, p)
	}
	return params
}

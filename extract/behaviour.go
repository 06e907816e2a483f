package extract

import (
	"github.com/c360studio/exast/ast"
)

// CallbackKind distinguishes callback declarations from macro callbacks.
type CallbackKind string

const (
	CallbackFunction CallbackKind = "callback"
	CallbackMacro    CallbackKind = "macrocallback"
)

// Callback is one callback contract of a behaviour module.
type Callback struct {
	Name     string
	Arity    int
	Kind     CallbackKind
	Spec     *FunctionSpec
	Doc      string
	Optional bool

	Location *ast.SourceLocation
	Metadata Metadata
}

// Behaviour is the extraction record for a module's behaviour surface:
// the callbacks it declares and the behaviours it adopts.
type Behaviour struct {
	Callbacks []*Callback

	// Implements lists the modules named by behaviour-adoption
	// declarations, as segment lists.
	Implements [][]string

	Location *ast.SourceLocation
	Metadata Metadata
}

// ExtractBehaviour scans a definition body's flat statement list for
// callback, macro-callback, optional-callback, and behaviour-adoption
// declarations. The optional-callback set is built in a first pass so
// each callback can look up its own optionality by (name, arity); a
// pending doc annotation carries across statements and attaches to the
// next callback, then resets. The node may be a defmodule or a bare body.
func ExtractBehaviour(n ast.Node, opts Options) (*Behaviour, error) {
	statements, ok := definitionBody(n)
	if !ok {
		return nil, notKind("behaviour body", n)
	}

	b := &Behaviour{
		Location: location(n, opts),
		Metadata: Metadata{},
	}

	// First pass: optional-callback declarations.
	optional := make(map[NameArity]struct{})
	for _, stmt := range statements {
		name, value, ok := attribute(stmt)
		if !ok || name != "optional_callbacks" {
			continue
		}
		for _, na := range optionalCallbackEntries(value) {
			optional[na] = struct{}{}
		}
	}

	// Second pass: callbacks, with the pending-doc carry. The carry is a
	// two-state automaton local to this one reduction.
	var pendingDoc string
	for _, stmt := range statements {
		name, value, ok := attribute(stmt)
		if !ok {
			continue
		}

		switch name {
		case "doc":
			if s, ok := value.(*ast.String); ok {
				pendingDoc = s.Value
			} else {
				pendingDoc = ""
			}
		case "callback", "macrocallback":
			cb := extractCallback(stmt, name, value, opts)
			if cb == nil {
				opts.logger().Warn("skipping malformed callback declaration",
					"node", ast.Render(stmt))
				continue
			}
			cb.Doc = pendingDoc
			pendingDoc = ""
			if _, ok := optional[NameArity{Name: cb.Name, Arity: cb.Arity}]; ok {
				cb.Optional = true
			}
			b.Callbacks = append(b.Callbacks, cb)
		case "behaviour":
			if segments, ok := aliasSegments(value); ok {
				b.Implements = append(b.Implements, segments)
			}
		}
	}

	b.Metadata["callback_count"] = len(b.Callbacks)
	b.Metadata["optional_count"] = len(optional)
	return b, nil
}

// definitionBody normalizes a defmodule node or a bare body into its flat
// statement list.
func definitionBody(n ast.Node) ([]ast.Node, bool) {
	if call, ok := n.(*ast.Call); ok && call.Tag == "defmodule" {
		body, ok := blockArg(call.Args, "do")
		if !ok {
			return nil, false
		}
		return normalizeBody(body), true
	}
	if n == nil {
		return nil, false
	}
	return normalizeBody(n), true
}

// optionalCallbackEntries accepts both the keyword form
// [name: arity, ...] and the tuple-list form [{name, arity}, ...].
func optionalCallbackEntries(n ast.Node) []NameArity {
	if entries := nameArityPairs(n); len(entries) > 0 {
		return entries
	}
	list, ok := n.(*ast.List)
	if !ok {
		return nil
	}
	var out []NameArity
	for _, el := range list.Elements {
		tuple, ok := el.(*ast.Tuple)
		if !ok || len(tuple.Elements) != 2 {
			continue
		}
		name, ok := ast.AtomName(tuple.Elements[0])
		if !ok {
			continue
		}
		arity, ok := tuple.Elements[1].(*ast.Integer)
		if !ok {
			continue
		}
		out = append(out, NameArity{Name: name, Arity: int(arity.Value)})
	}
	return out
}

func extractCallback(stmt ast.Node, kind string, value ast.Node, opts Options) *Callback {
	if value == nil {
		return nil
	}
	spec, err := ExtractFunctionSpec(value)
	if err != nil {
		return nil
	}

	cb := &Callback{
		Name:     spec.Name,
		Arity:    spec.Arity,
		Kind:     CallbackFunction,
		Spec:     spec,
		Location: location(stmt, opts),
		Metadata: Metadata{},
	}
	if kind == "macrocallback" {
		cb.Kind = CallbackMacro
	}
	return cb
}

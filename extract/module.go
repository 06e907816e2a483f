package extract

import (
	"github.com/c360studio/exast/ast"
)

// ModuleDoc is the three-way module documentation result: a present
// string, an explicit false (documentation suppressed), or absent.
type ModuleDoc struct {
	Present bool
	Hidden  bool
	Text    string
}

// Directive is one alias, import, require, or use declaration.
type Directive struct {
	Module []string

	// As is the local alias for alias/require directives.
	As []string

	// Only and Except are the name/arity filters of import directives.
	Only   []NameArity
	Except []NameArity

	// Scope is set instead of Only when an import filters by kind
	// (functions or macros) rather than by name.
	Scope string

	// Options is the verbatim option list, passed through opaquely for
	// use directives.
	Options ast.Node

	Location *ast.SourceLocation
}

// SignatureSummary is a shallow name/arity/visibility summary of a
// definition found in a module body.
type SignatureSummary struct {
	Name       string
	Arity      int
	Visibility Visibility
}

// Module is the extraction record for a module definition.
type Module struct {
	// Name is the ordered list of name segments, prefixed with the
	// caller's parent-module context when one was supplied.
	Name []string

	Doc ModuleDoc

	Aliases  []Directive
	Imports  []Directive
	Requires []Directive
	Uses     []Directive

	Functions []SignatureSummary
	Macros    []SignatureSummary
	Types     []SignatureSummary

	// NestedModules are the names of modules defined inside this one,
	// collected flat for the caller to recurse into explicitly with a
	// parent-module context option.
	NestedModules [][]string

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsModule reports whether the node is a module definition.
func IsModule(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "defmodule" && len(call.Args) >= 1
}

// ExtractModule converts a defmodule node into a Module record. Nested
// module bodies are not recursed into; their names are collected for the
// caller.
func ExtractModule(n ast.Node, opts Options) (*Module, error) {
	call, ok := n.(*ast.Call)
	if !ok || call.Tag != "defmodule" || len(call.Args) < 1 {
		return nil, notKind("module definition", n)
	}

	segments, ok := aliasSegments(call.Args[0])
	if !ok {
		return nil, notKind("module definition", n)
	}

	m := &Module{
		Name:     append(append([]string{}, opts.ParentModule...), segments...),
		Location: location(n, opts),
		Metadata: Metadata{},
	}
	if len(opts.ParentModule) > 0 {
		m.Metadata["declared_name"] = segments
	}

	body, _ := blockArg(call.Args[1:], "do")
	statements := normalizeBody(body)

	m.Doc = findModuleDoc(statements)

	for _, stmt := range statements {
		switch {
		case IsModule(stmt):
			nested := stmt.(*ast.Call)
			if nestedName, ok := aliasSegments(nested.Args[0]); ok {
				m.NestedModules = append(m.NestedModules, nestedName)
			}
		case IsFunction(stmt):
			if summary, ok := summarizeDefinition(stmt); ok {
				m.Functions = append(m.Functions, summary)
			}
		case IsMacro(stmt):
			if summary, ok := summarizeDefinition(stmt); ok {
				m.Macros = append(m.Macros, summary)
			}
		default:
			m.collectDirective(stmt, opts)
		}
	}

	m.Metadata["function_count"] = len(m.Functions)
	m.Metadata["nested_count"] = len(m.NestedModules)
	return m, nil
}

// findModuleDoc scans normalized body statements for the module
// documentation attribute, short-circuiting on the first one found.
func findModuleDoc(statements []ast.Node) ModuleDoc {
	for _, stmt := range statements {
		name, value, ok := attribute(stmt)
		if !ok || name != "moduledoc" {
			continue
		}
		switch v := value.(type) {
		case *ast.String:
			return ModuleDoc{Present: true, Text: v.Value}
		case *ast.Atom:
			if v.Name == "false" {
				return ModuleDoc{Hidden: true}
			}
		}
		return ModuleDoc{}
	}
	return ModuleDoc{}
}

// summarizeDefinition produces the shallow name/arity/visibility summary
// of a definition statement without descending into its body.
func summarizeDefinition(n ast.Node) (SignatureSummary, bool) {
	call := n.(*ast.Call)
	head, _, ok := decomposeDefinition(call)
	if !ok {
		return SignatureSummary{}, false
	}
	visibility := VisibilityPublic
	if call.Tag == "defp" || call.Tag == "defmacrop" {
		visibility = VisibilityPrivate
	}
	return SignatureSummary{
		Name:       head.name,
		Arity:      len(head.params),
		Visibility: visibility,
	}, true
}

// collectDirective routes a body statement into one of the four directive
// lists or the type summaries, ignoring everything else.
func (m *Module) collectDirective(stmt ast.Node, opts Options) {
	if name, value, ok := attribute(stmt); ok {
		var visibility Visibility
		switch name {
		case "type", "opaque":
			visibility = VisibilityPublic
		case "typep":
			visibility = VisibilityPrivate
		default:
			return
		}
		if spec, err := ExtractFunctionSpec(value); err == nil {
			m.Types = append(m.Types, SignatureSummary{
				Name:       spec.Name,
				Arity:      spec.Arity,
				Visibility: visibility,
			})
		} else if sig, ok := typeHead(value); ok {
			sig.Visibility = visibility
			m.Types = append(m.Types, sig)
		}
		return
	}

	call, ok := stmt.(*ast.Call)
	if !ok {
		return
	}
	switch call.Tag {
	case "alias":
		m.Aliases = append(m.Aliases, parseDirectives(call, opts)...)
	case "import":
		m.Imports = append(m.Imports, parseDirectives(call, opts)...)
	case "require":
		m.Requires = append(m.Requires, parseDirectives(call, opts)...)
	case "use":
		m.Uses = append(m.Uses, parseDirectives(call, opts)...)
	}
}

// typeHead reads the name and arity of a type declaration whose right
// side is not a spec-shaped signature (e.g. @type t :: term() parses as a
// spec; @type t subscribes here only in degenerate shapes).
func typeHead(value ast.Node) (SignatureSummary, bool) {
	switch v := value.(type) {
	case *ast.Variable:
		return SignatureSummary{Name: v.Name}, true
	case *ast.Call:
		if !isSpecialForm(v.Tag) {
			return SignatureSummary{Name: v.Tag, Arity: len(v.Args)}, true
		}
	}
	return SignatureSummary{}, false
}

// parseDirectives parses a 1- or 2-argument directive node. The
// multi-alias form alias Foo.{Bar, Baz} expands into one directive per
// referenced module.
func parseDirectives(call *ast.Call, opts Options) []Directive {
	if len(call.Args) == 0 {
		return nil
	}

	// Multi-alias: the module position is a qualified {} call.
	if expanded, ok := expandMultiAlias(call, opts); ok {
		return expanded
	}

	segments, ok := aliasSegments(call.Args[0])
	if !ok || len(segments) == 0 {
		return nil
	}

	d := Directive{
		Module:   segments,
		Location: location(call, opts),
	}
	// Default alias: the last segment becomes the local name.
	if call.Tag == "alias" {
		d.As = []string{segments[len(segments)-1]}
	}

	if len(call.Args) >= 2 {
		applyDirectiveOptions(&d, call, call.Args[1])
	}
	return []Directive{d}
}

func applyDirectiveOptions(d *Directive, call *ast.Call, options ast.Node) {
	switch call.Tag {
	case "alias", "require":
		if as, ok := ast.KeywordGet(options, "as"); ok {
			if segments, ok := aliasSegments(as); ok {
				d.As = segments
			}
		}
	case "import":
		if only, ok := ast.KeywordGet(options, "only"); ok {
			if scope, isAtom := ast.AtomName(only); isAtom {
				d.Scope = scope
			} else {
				d.Only = nameArityPairs(only)
			}
		}
		if except, ok := ast.KeywordGet(options, "except"); ok {
			d.Except = nameArityPairs(except)
		}
	case "use":
		d.Options = options
	}
}

// expandMultiAlias handles alias Foo.{Bar, Baz}, which quotes as a
// qualified {} call on the common prefix.
func expandMultiAlias(call *ast.Call, opts Options) ([]Directive, bool) {
	rc, ok := call.Args[0].(*ast.RemoteCall)
	if !ok || rc.Function != "{}" {
		return nil, false
	}
	prefix, ok := aliasSegments(rc.Receiver)
	if !ok {
		return nil, false
	}

	var out []Directive
	for _, arg := range rc.Args {
		suffix, ok := aliasSegments(arg)
		if !ok {
			continue
		}
		module := append(append([]string{}, prefix...), suffix...)
		d := Directive{
			Module:   module,
			Location: location(call, opts),
		}
		if call.Tag == "alias" {
			d.As = []string{module[len(module)-1]}
		}
		out = append(out, d)
	}
	return out, true
}

package extract

import (
	"strings"

	"github.com/c360studio/exast/ast"
)

// MacroCategory classifies a call-shaped node into one of 7 categories.
type MacroCategory string

const (
	CategoryDefinition  MacroCategory = "definition"
	CategoryControlFlow MacroCategory = "control_flow"
	CategoryImport      MacroCategory = "import"
	CategoryAttribute   MacroCategory = "attribute"
	CategoryQuote       MacroCategory = "quote"
	CategoryLibrary     MacroCategory = "library"
	CategoryCustom      MacroCategory = "custom"
)

// Fixed lookup tables for built-in forms. Membership is exact.
var (
	definitionMacros = map[string]struct{}{
		"def": {}, "defp": {}, "defmacro": {}, "defmacrop": {},
		"defmodule": {}, "defstruct": {}, "defexception": {},
		"defprotocol": {}, "defimpl": {}, "defdelegate": {},
		"defguard": {}, "defguardp": {}, "defoverridable": {},
	}
	controlFlowMacros = map[string]struct{}{
		"if": {}, "unless": {}, "cond": {}, "case": {}, "with": {},
		"for": {}, "receive": {}, "try": {}, "raise": {}, "reraise": {},
		"throw": {},
	}
	importMacros = map[string]struct{}{
		"import": {}, "require": {}, "alias": {}, "use": {},
	}
	quoteMacros = map[string]struct{}{
		"quote": {}, "unquote": {}, "unquote_splicing": {},
	}

	// libraryMacros maps well-known third-party macro names to the module
	// suffix exporting them, to tell library invocations apart from
	// generic custom qualified calls.
	libraryMacros = map[string]string{
		"debug":   "Logger",
		"info":    "Logger",
		"warning": "Logger",
		"error":   "Logger",

		"from":     "Query",
		"where":    "Query",
		"select":   "Query",
		"join":     "Query",
		"order_by": "Query",

		"get":          "Router",
		"post":         "Router",
		"put":          "Router",
		"delete":       "Router",
		"resources":    "Router",
		"pipe_through": "Router",

		"test":     "ExUnit",
		"describe": "ExUnit",
		"assert":   "ExUnit",
		"refute":   "ExUnit",
		"setup":    "ExUnit",
	}
)

// MacroInvocation is the extraction record for a call-shaped node viewed
// as a macro invocation.
type MacroInvocation struct {
	Name      string
	Module    []string
	Category  MacroCategory
	Arguments []ast.Node

	Location *ast.SourceLocation
	Metadata Metadata
}

// ClassifyMacro determines the category of an unqualified call tag.
func ClassifyMacro(tag string) MacroCategory {
	if _, ok := definitionMacros[tag]; ok {
		return CategoryDefinition
	}
	if _, ok := controlFlowMacros[tag]; ok {
		return CategoryControlFlow
	}
	if _, ok := importMacros[tag]; ok {
		return CategoryImport
	}
	if _, ok := quoteMacros[tag]; ok {
		return CategoryQuote
	}
	if tag == "@" {
		return CategoryAttribute
	}
	return CategoryCustom
}

// ExtractMacroInvocation converts a call-shaped node into a
// MacroInvocation record. Qualified calls additionally check the
// well-known library table to distinguish library invocations from
// generic custom qualified calls.
func ExtractMacroInvocation(n ast.Node) (*MacroInvocation, error) {
	switch v := n.(type) {
	case *ast.Call:
		inv := &MacroInvocation{
			Name:      v.Tag,
			Category:  ClassifyMacro(v.Tag),
			Arguments: v.Args,
			Location:  nodeLocation(n),
			Metadata:  Metadata{},
		}
		if name, _, ok := attribute(n); ok {
			inv.Name = name
			inv.Category = CategoryAttribute
		}
		return inv, nil
	case *ast.RemoteCall:
		inv := &MacroInvocation{
			Name:      v.Function,
			Category:  CategoryCustom,
			Arguments: v.Args,
			Location:  nodeLocation(n),
			Metadata:  Metadata{},
		}
		if segments, ok := aliasSegments(v.Receiver); ok {
			inv.Module = segments
			if suffix, known := libraryMacros[v.Function]; known && hasModuleSuffix(segments, suffix) {
				inv.Category = CategoryLibrary
			}
		}
		return inv, nil
	default:
		return nil, notKind("macro invocation", n)
	}
}

func hasModuleSuffix(segments []string, suffix string) bool {
	for _, s := range segments {
		if s == suffix || strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// ExtractImportDirectives collects the import and require directives of a
// statement list, independently of module extraction, for downstream
// resolution bookkeeping.
func ExtractImportDirectives(statements []ast.Node, opts Options) ([]Directive, []Directive) {
	var imports, requires []Directive
	for _, stmt := range statements {
		call, ok := stmt.(*ast.Call)
		if !ok {
			continue
		}
		switch call.Tag {
		case "import":
			imports = append(imports, parseDirectives(call, opts)...)
		case "require":
			requires = append(requires, parseDirectives(call, opts)...)
		}
	}
	return imports, requires
}

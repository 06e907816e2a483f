package code

// Predicates use three-part dotted notation: domain.category.property.
// Field names are stable per record kind; renaming one is a breaking
// change for every graph built on top.

// Identity predicates shared by all extraction records.
const (
	// ArtifactKind identifies the record kind.
	// Values: literal|pattern|guard|operator|function|macro|spec|
	// behaviour|struct|module|conditional|case|with|receive|try|
	// comprehension|capture|pipe|invocation|anonymous_function
	ArtifactKind = "code.artifact.kind"

	// ArtifactLanguage is always "elixir" for this extractor family.
	ArtifactLanguage = "code.artifact.language"
)

// Location predicates, attached wherever the originating node carried
// position metadata.
const (
	LocationStartLine   = "code.location.start_line"
	LocationStartColumn = "code.location.start_column"
	LocationEndLine     = "code.location.end_line"
	LocationEndColumn   = "code.location.end_column"
)

// Function and macro predicates.
const (
	FunctionName       = "code.function.name"
	FunctionArity      = "code.function.arity"
	FunctionMinArity   = "code.function.min_arity"
	FunctionVisibility = "code.function.visibility"
	FunctionHasGuard   = "code.function.has_guard"
	MacroHygienic      = "code.macro.hygienic"
	MacroUsesUnquote   = "code.macro.uses_unquote"
)

// Module predicates.
const (
	ModuleName       = "code.module.name"
	ModuleDoc        = "code.module.doc"
	ModuleAliases    = "code.module.aliases"
	ModuleImports    = "code.module.imports"
	ModuleRequires   = "code.module.requires"
	ModuleUses       = "code.module.uses"
	ModuleNested     = "code.module.nested"
	ModuleBehaviours = "code.module.behaviours"
)

// Struct predicates.
const (
	StructFields       = "code.struct.fields"
	StructEnforcedKeys = "code.struct.enforced_keys"
	StructDerives      = "code.struct.derives"
	StructIsException  = "code.struct.is_exception"
)

// Pattern and binding predicates.
const (
	PatternKind     = "code.pattern.kind"
	PatternBindings = "code.pattern.bindings"
	GuardCombinator = "code.guard.combinator"
	GuardFunctions  = "code.guard.functions"
)

// Control-flow predicates.
const (
	ClauseCount      = "code.flow.clause_count"
	HasElse          = "code.flow.has_else"
	IsCatchAll       = "code.flow.is_catch_all"
	IsBlocking       = "code.flow.is_blocking"
	GeneratorCount   = "code.flow.generator_count"
	FilterCount      = "code.flow.filter_count"
	StatementCount   = "code.flow.statement_count"
	MalformedClauses = "code.flow.malformed_clauses"
)

// Call-site predicates.
const (
	CaptureKind      = "code.capture.kind"
	CaptureArity     = "code.capture.arity"
	CaptureGaps      = "code.capture.gaps"
	PipeLength       = "code.pipe.length"
	PipeStartValue   = "code.pipe.start_value"
	InvocationName   = "code.invocation.name"
	InvocationTarget = "code.invocation.module"
	MacroCategory    = "code.invocation.category"
)

package code

// EntityKind classifies a graph entity produced from an extraction
// record. Values are lowercase snake_case strings so they can be
// embedded directly in IRIs and query filters.
type EntityKind string

const (
	// EntityModule is a defmodule body with its directives and
	// signature summaries.
	EntityModule EntityKind = "module"
	// EntityPublicFunction is a def clause.
	EntityPublicFunction EntityKind = "public_function"
	// EntityPrivateFunction is a defp clause.
	EntityPrivateFunction EntityKind = "private_function"
	// EntityMacro covers defmacro and defmacrop clauses.
	EntityMacro EntityKind = "macro"
	// EntityStruct is a defstruct or defexception definition.
	EntityStruct EntityKind = "struct"
	// EntityBehaviour is a module defining callbacks.
	EntityBehaviour EntityKind = "behaviour"
	// EntityTypeSpec is an @spec annotation.
	EntityTypeSpec EntityKind = "type_spec"
	// EntityLiteral is a literal value expression.
	EntityLiteral EntityKind = "literal"
	// EntityPattern is a match pattern.
	EntityPattern EntityKind = "pattern"
	// EntityGuard is a guard expression.
	EntityGuard EntityKind = "guard"
	// EntityOperator is an operator application.
	EntityOperator EntityKind = "operator"
	// EntityControlFlow covers if/unless/cond, case, with, receive,
	// try, and comprehensions.
	EntityControlFlow EntityKind = "control_flow"
	// EntityCapture is a &-capture expression.
	EntityCapture EntityKind = "capture"
	// EntityPipe is a |> chain.
	EntityPipe EntityKind = "pipe"
	// EntityInvocation is a macro or remote call site.
	EntityInvocation EntityKind = "invocation"
	// EntityAnonymousFunction is an fn expression.
	EntityAnonymousFunction EntityKind = "anonymous_function"
)

// Valid reports whether k is a known entity kind.
func (k EntityKind) Valid() bool {
	switch k {
	case EntityModule, EntityPublicFunction, EntityPrivateFunction,
		EntityMacro, EntityStruct, EntityBehaviour, EntityTypeSpec,
		EntityLiteral, EntityPattern, EntityGuard, EntityOperator,
		EntityControlFlow, EntityCapture, EntityPipe,
		EntityInvocation, EntityAnonymousFunction:
		return true
	}
	return false
}

// RecordKind names an extraction record type as it appears in the
// code.artifact.kind predicate.
type RecordKind string

const (
	RecordLiteral           RecordKind = "literal"
	RecordPattern           RecordKind = "pattern"
	RecordGuard             RecordKind = "guard"
	RecordOperator          RecordKind = "operator"
	RecordFunction          RecordKind = "function"
	RecordMacro             RecordKind = "macro"
	RecordFunctionSpec      RecordKind = "spec"
	RecordBehaviour         RecordKind = "behaviour"
	RecordStruct            RecordKind = "struct"
	RecordModule            RecordKind = "module"
	RecordConditional       RecordKind = "conditional"
	RecordCase              RecordKind = "case"
	RecordWith              RecordKind = "with"
	RecordReceive           RecordKind = "receive"
	RecordTry               RecordKind = "try"
	RecordComprehension     RecordKind = "comprehension"
	RecordCapture           RecordKind = "capture"
	RecordPipe              RecordKind = "pipe"
	RecordInvocation        RecordKind = "invocation"
	RecordAnonymousFunction RecordKind = "anonymous_function"
)

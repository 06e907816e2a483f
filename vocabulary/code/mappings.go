package code

// EntityKindFor maps each record kind to the entity kind the graph
// builder materializes for it. Function visibility is resolved by
// EntityKindForFunction since the record kind alone does not carry it.
var entityKinds = map[RecordKind]EntityKind{
	RecordLiteral:           EntityLiteral,
	RecordPattern:           EntityPattern,
	RecordGuard:             EntityGuard,
	RecordOperator:          EntityOperator,
	RecordMacro:             EntityMacro,
	RecordFunctionSpec:      EntityTypeSpec,
	RecordBehaviour:         EntityBehaviour,
	RecordStruct:            EntityStruct,
	RecordModule:            EntityModule,
	RecordConditional:       EntityControlFlow,
	RecordCase:              EntityControlFlow,
	RecordWith:              EntityControlFlow,
	RecordReceive:           EntityControlFlow,
	RecordTry:               EntityControlFlow,
	RecordComprehension:     EntityControlFlow,
	RecordCapture:           EntityCapture,
	RecordPipe:              EntityPipe,
	RecordInvocation:        EntityInvocation,
	RecordAnonymousFunction: EntityAnonymousFunction,
}

// EntityKindFor returns the entity kind for a record kind. The second
// return is false for unknown kinds and for RecordFunction, which
// needs visibility to resolve.
func EntityKindFor(r RecordKind) (EntityKind, bool) {
	k, ok := entityKinds[r]
	return k, ok
}

// EntityKindForFunction resolves a function record using its
// visibility field ("public" or "private").
func EntityKindForFunction(visibility string) EntityKind {
	if visibility == "private" {
		return EntityPrivateFunction
	}
	return EntityPublicFunction
}

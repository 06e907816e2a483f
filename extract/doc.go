// Package extract converts recognized Elixir AST constructs into immutable
// records suitable for populating a knowledge graph.
//
// Every extractor is a pair of operations: a total, side-effect-free
// classification predicate over a node's tag and argument shape, and an
// extract function producing a typed record. Classification never inspects
// semantic meaning, only structure. Extraction never raises: a node of the
// wrong kind yields a *KindError, and a malformed-but-recognizable child
// degrades to a placeholder marked malformed while its siblings extract
// normally.
//
// Extractors are stateless pure functions; a batch driver may run them
// across files or subtrees in parallel with no coordination.
package extract

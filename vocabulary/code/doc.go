// Package code provides the vocabulary the downstream graph builder maps
// extraction records onto: stable field-name predicates per record kind,
// entity kind enums, and record-kind to entity-kind mappings.
//
// The extractors themselves never emit triples; their only obligation to
// the graph builder is stable field names, and this package is where
// those names live.
package code

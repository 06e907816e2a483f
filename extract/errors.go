package extract

import (
	"fmt"

	"github.com/c360studio/exast/ast"
)

// KindError reports that a node does not match the shape the invoked
// extractor expects. The offending node is rendered with bounded size so
// error payloads stay small.
type KindError struct {
	Want string
	Node ast.Node
}

func (e *KindError) Error() string {
	return fmt.Sprintf("node is not a %s: %s", e.Want, ast.Render(e.Node))
}

func notKind(want string, n ast.Node) error {
	return &KindError{Want: want, Node: n}
}

// ArityMismatchError reports anonymous function clauses that disagree on
// parameter count. This is the one shape inconsistency treated as a hard
// contract violation rather than a degradation.
type ArityMismatchError struct {
	Arities []int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("anonymous function clauses disagree on arity: %v", e.Arities)
}

// Must unwraps an extractor result, panicking on error. Use only at call
// sites that have already established the node is valid; extractors
// themselves never panic.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

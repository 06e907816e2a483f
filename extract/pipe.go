package extract

import (
	"github.com/c360studio/exast/ast"
)

// PipeStep is one step of a flattened pipe chain. Arguments holds only
// the step's explicit arguments: the implicit first argument contributed
// by the pipe itself is never counted.
type PipeStep struct {
	Function  string
	Module    []string
	Arguments []ast.Node
	Node      ast.Node

	// IsPlaceholder marks steps that are not call-shaped (anonymous
	// function invocations and other expressions); they degrade to a
	// generic record instead of failing the chain.
	IsPlaceholder bool
}

// PipeChain is the extraction record for a pipe chain, flattened into
// left-to-right order.
type PipeChain struct {
	StartValue ast.Node
	Steps      []PipeStep

	Location *ast.SourceLocation
	Metadata Metadata
}

// IsPipe reports whether the node is a pipe application.
func IsPipe(n ast.Node) bool {
	call, ok := n.(*ast.Call)
	return ok && call.Tag == "|>" && len(call.Args) == 2
}

// ExtractPipeChain flattens a right-nested pipe tree (a |> b |> c parses
// as (a |> b) |> c) into an ordered step list by recursively unwinding
// the left-hand nesting.
func ExtractPipeChain(n ast.Node) (*PipeChain, error) {
	if !IsPipe(n) {
		return nil, notKind("pipe chain", n)
	}

	chain := &PipeChain{
		Location: nodeLocation(n),
		Metadata: Metadata{},
	}

	var steps []ast.Node
	current := n
	for IsPipe(current) {
		call := current.(*ast.Call)
		steps = append([]ast.Node{call.Args[1]}, steps...)
		current = call.Args[0]
	}
	chain.StartValue = current

	for _, stepNode := range steps {
		chain.Steps = append(chain.Steps, extractPipeStep(stepNode))
	}

	chain.Metadata["length"] = len(chain.Steps)
	return chain, nil
}

// Length returns the number of steps in the chain.
func (c *PipeChain) Length() int {
	return len(c.Steps)
}

func extractPipeStep(n ast.Node) PipeStep {
	switch v := n.(type) {
	case *ast.Call:
		if !isSpecialForm(v.Tag) {
			return PipeStep{Function: v.Tag, Arguments: v.Args, Node: n}
		}
	case *ast.RemoteCall:
		if segments, ok := aliasSegments(v.Receiver); ok {
			return PipeStep{Function: v.Function, Module: segments, Arguments: v.Args, Node: n}
		}
		return PipeStep{Function: v.Function, Arguments: v.Args, Node: n}
	case *ast.Variable:
		// A bare name in the step position is a zero-argument local call.
		return PipeStep{Function: v.Name, Node: n}
	}
	return PipeStep{Node: n, IsPlaceholder: true}
}

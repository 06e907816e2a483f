package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/exast/ast"
)

func TestExtractAnonymousFunction(t *testing.T) {
	// fn x -> x * 2 end
	node := call("fn", arrow(list(variable("x")), call("*", variable("x"), integer(2))))

	fn, err := ExtractAnonymousFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, fn.Arity)
	require.Len(t, fn.Clauses, 1)
	assert.Equal(t, []ast.Node{variable("x")}, fn.Clauses[0].Parameters)
	assert.Nil(t, fn.Clauses[0].Guard)
	assert.Len(t, fn.Clauses[0].Body, 1)
}

func TestExtractAnonymousFunctionMultiClause(t *testing.T) {
	node := call("fn",
		arrow(list(tuple(atom("ok"), variable("v"))), variable("v")),
		arrow(list(atom("error")), atom("nil")),
	)

	fn, err := ExtractAnonymousFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, fn.Arity)
	assert.Len(t, fn.Clauses, 2)
	assert.Equal(t, 2, fn.Metadata["clause_count"])
}

func TestExtractAnonymousFunctionGuardedClause(t *testing.T) {
	// fn x, y when x > y -> x end: the guard wraps the whole parameter
	// list.
	node := call("fn",
		arrow(
			list(call("when", variable("x"), variable("y"), call(">", variable("x"), variable("y")))),
			variable("x"),
		),
	)

	fn, err := ExtractAnonymousFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, fn.Arity)
	require.Len(t, fn.Clauses, 1)
	assert.Equal(t, []ast.Node{variable("x"), variable("y")}, fn.Clauses[0].Parameters)
	assert.Equal(t, ast.Node(call(">", variable("x"), variable("y"))), fn.Clauses[0].Guard)
}

func TestExtractAnonymousFunctionArityMismatch(t *testing.T) {
	node := call("fn",
		arrow(list(variable("x")), variable("x")),
		arrow(list(variable("a")), variable("a")),
		arrow(list(variable("a"), variable("b")), variable("a")),
	)

	_, err := ExtractAnonymousFunction(node, quietOptions())
	var arityErr *ArityMismatchError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, []int{1, 1, 2}, arityErr.Arities)
}

func TestExtractAnonymousFunctionMalformedClauseDegrades(t *testing.T) {
	node := call("fn",
		arrow(list(variable("x")), variable("x")),
		str("garbage"),
	)

	fn, err := ExtractAnonymousFunction(node, quietOptions())
	require.NoError(t, err)
	require.Len(t, fn.Clauses, 2)
	assert.False(t, fn.Clauses[0].Malformed)
	assert.True(t, fn.Clauses[1].Malformed)
	// The malformed clause is excluded from the arity agreement check.
	assert.Equal(t, 1, fn.Arity)
}

func TestExtractAnonymousFunctionIncludePatterns(t *testing.T) {
	node := call("fn",
		arrow(list(tuple(atom("ok"), variable("v")), variable("acc")), variable("acc")),
	)

	opts := quietOptions()
	opts.IncludePatterns = true
	fn, err := ExtractAnonymousFunction(node, opts)
	require.NoError(t, err)
	require.Len(t, fn.Clauses, 1)
	require.Len(t, fn.Clauses[0].ParameterPatterns, 2)
	assert.Equal(t, PatternTuple, fn.Clauses[0].ParameterPatterns[0].Kind)
	assert.Equal(t, PatternVariable, fn.Clauses[0].ParameterPatterns[1].Kind)
}

func TestExtractAnonymousFunctionRejects(t *testing.T) {
	var kindErr *KindError
	_, err := ExtractAnonymousFunction(call("fn"), quietOptions())
	require.ErrorAs(t, err, &kindErr)
	_, err = ExtractAnonymousFunction(variable("f"), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

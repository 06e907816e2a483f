package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/exast/ast"
)

func TestExtractGuardCombinators(t *testing.T) {
	isAtom := call("is_atom", variable("x"))
	isInt := call("is_integer", variable("y"))
	isList := call("is_list", variable("z"))

	tests := []struct {
		name       string
		expr       ast.Node
		combinator GuardCombinator
		leaves     int
	}{
		{"single leaf", isAtom, CombinatorNone, 1},
		{"and pair", call("and", isAtom, isInt), CombinatorAnd, 2},
		{"or pair", call("or", isAtom, isInt), CombinatorOr, 2},
		{
			"nested and",
			call("and", call("and", isAtom, isInt), isList),
			CombinatorAnd, 3,
		},
		{
			"mixed tree",
			call("or", call("and", isAtom, isInt), isList),
			CombinatorMixed, 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ExtractGuard(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.combinator, g.Combinator)
			assert.Len(t, g.Expressions, tt.leaves)
		})
	}
}

func TestExtractGuardFlattenOrder(t *testing.T) {
	a := call("is_atom", variable("x"))
	b := call("is_integer", variable("y"))
	c := call("is_list", variable("z"))

	// (a and b) and c flattens left-to-right depth-first.
	g, err := ExtractGuard(call("and", call("and", a, b), c))
	require.NoError(t, err)
	require.Len(t, g.Expressions, 3)
	assert.Equal(t, ast.Node(a), g.Expressions[0])
	assert.Equal(t, ast.Node(b), g.Expressions[1])
	assert.Equal(t, ast.Node(c), g.Expressions[2])
}

func TestExtractGuardFunctions(t *testing.T) {
	// length(x) > 0 and is_atom(y): comparison and length nest inside the
	// leaves, is_atom sits at a leaf root, foo is unknown.
	expr := call("and",
		call(">", call("length", variable("x")), integer(0)),
		call("is_atom", call("foo", variable("y"))),
	)

	g, err := ExtractGuard(expr)
	require.NoError(t, err)
	assert.Equal(t, []string{">", "length", "is_atom"}, g.Functions)
}

func TestExtractGuardCombinatorInsideLeafIgnored(t *testing.T) {
	// The and inside the call argument is an expression, not a guard
	// combinator: the guard itself is a single leaf.
	expr := call("is_boolean", call("and", variable("a"), variable("b")))

	g, err := ExtractGuard(expr)
	require.NoError(t, err)
	assert.Equal(t, CombinatorNone, g.Combinator)
	assert.Len(t, g.Expressions, 1)
}

func TestExtractGuardNil(t *testing.T) {
	_, err := ExtractGuard(nil)
	var kindErr *KindError
	require.ErrorAs(t, err, &kindErr)
}

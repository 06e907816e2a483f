package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFunctionPlain(t *testing.T) {
	// def add(a, b), do: a + b
	node := call("def",
		call("add", variable("a"), variable("b")),
		doBlock(call("+", variable("a"), variable("b"))),
	)

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, 2, fn.Arity)
	assert.Equal(t, 2, fn.MinArity)
	assert.Equal(t, VisibilityPublic, fn.Visibility)
	assert.True(t, fn.HasBody)
	assert.Len(t, fn.Body, 1)
	assert.Nil(t, fn.Guard)
}

func TestExtractFunctionPrivate(t *testing.T) {
	node := call("defp", call("helper", variable("x")), doBlock(variable("x")))

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, VisibilityPrivate, fn.Visibility)
}

func TestExtractFunctionGuarded(t *testing.T) {
	// def half(n) when is_integer(n) and n > 0, do: div(n, 2)
	node := call("def",
		call("when",
			call("half", variable("n")),
			call("and",
				call("is_integer", variable("n")),
				call(">", variable("n"), integer(0)),
			),
		),
		doBlock(call("div", variable("n"), integer(2))),
	)

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, "half", fn.Name)
	require.NotNil(t, fn.Guard)
	assert.Equal(t, CombinatorAnd, fn.Guard.Combinator)
	assert.Equal(t, true, fn.Metadata["has_guard"])
}

func TestExtractFunctionZeroArityNoParens(t *testing.T) {
	// def version, do: "1.0" quotes the head as a bare variable.
	node := call("def", variable("version"), doBlock(str("1.0")))

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, "version", fn.Name)
	assert.Equal(t, 0, fn.Arity)
	assert.Empty(t, fn.Parameters)
}

func TestExtractFunctionBodylessHead(t *testing.T) {
	// def fetch(key, default \\ nil) declares defaults for later clauses.
	node := call("def",
		call("fetch",
			variable("key"),
			call("\\\\", variable("default"), atom("nil")),
		),
	)

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.False(t, fn.HasBody)
	assert.Empty(t, fn.Body)
	assert.Equal(t, 2, fn.Arity)
	assert.Equal(t, 1, fn.MinArity)
}

func TestExtractFunctionDefaults(t *testing.T) {
	node := call("def",
		call("connect",
			variable("host"),
			call("\\\\", variable("port"), integer(4000)),
			call("\\\\", variable("opts"), list()),
		),
		doBlock(atom("ok")),
	)

	fn, err := ExtractFunction(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, fn.Arity)
	assert.Equal(t, 1, fn.MinArity)
	assert.Equal(t, 2, fn.Metadata["default_count"])
}

func TestExtractFunctionRejects(t *testing.T) {
	var kindErr *KindError

	_, err := ExtractFunction(call("defmacro", call("m"), doBlock(atom("ok"))), quietOptions())
	require.ErrorAs(t, err, &kindErr)

	// A special-form name in the head position is not a definition.
	_, err = ExtractFunction(call("def", call("if", variable("x"))), quietOptions())
	require.ErrorAs(t, err, &kindErr)

	_, err = ExtractFunction(call("def"), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

func TestIsFunction(t *testing.T) {
	assert.True(t, IsFunction(call("def", variable("f"))))
	assert.True(t, IsFunction(call("defp", variable("f"))))
	assert.False(t, IsFunction(call("defmacro", variable("f"))))
	assert.False(t, IsFunction(variable("def")))
}

func TestExtractMacro(t *testing.T) {
	// defmacro unless_zero(n, do: body) using quote/unquote.
	body := call("quote", doBlock(
		call("if", call("unquote", variable("n")), doBlock(call("unquote", variable("body")))),
	))
	node := call("defmacro",
		call("unless_zero", variable("n"), variable("body")),
		doBlock(body),
	)

	m, err := ExtractMacro(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, "unless_zero", m.Name)
	assert.Equal(t, 2, m.Arity)
	assert.Equal(t, VisibilityPublic, m.Visibility)
	assert.True(t, m.Hygienic)
	assert.True(t, m.UsesUnquote)
}

func TestExtractMacroUnhygienic(t *testing.T) {
	// A var! in the body breaks hygiene; unquote alone does not.
	body := call("quote", doBlock(
		call("=", call("var!", variable("result")), integer(1)),
	))
	node := call("defmacrop", call("leak"), doBlock(body))

	m, err := ExtractMacro(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, VisibilityPrivate, m.Visibility)
	assert.False(t, m.Hygienic)
	assert.False(t, m.UsesUnquote)
	assert.Equal(t, false, m.Metadata["hygienic"])
}

func TestExtractMacroRejectsFunction(t *testing.T) {
	var kindErr *KindError
	_, err := ExtractMacro(call("def", call("f"), doBlock(atom("ok"))), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

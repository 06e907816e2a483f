package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/exast/ast"
)

func TestExtractCase(t *testing.T) {
	node := call("case", call("fetch", variable("id")), doBlock(list(
		arrow(list(tuple(atom("ok"), variable("v"))), variable("v")),
		arrow(list(atom("error")), atom("nil")),
	)))

	c, err := ExtractCase(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, call("fetch", variable("id")), c.Subject)
	require.Len(t, c.Clauses, 2)
	assert.Equal(t, ast.Node(tuple(atom("ok"), variable("v"))), c.Clauses[0].Pattern)
	assert.Nil(t, c.Clauses[0].Guard)
	assert.Equal(t, []ast.Node{variable("v")}, c.Clauses[0].Body)
	assert.Equal(t, 2, c.Metadata["clause_count"])
}

func TestExtractCaseGuardedClause(t *testing.T) {
	node := call("case", variable("x"), doBlock(list(
		arrow(
			list(call("when", variable("n"), call("is_integer", variable("n")))),
			variable("n"),
		),
	)))

	c, err := ExtractCase(node, quietOptions())
	require.NoError(t, err)
	require.Len(t, c.Clauses, 1)
	assert.Equal(t, ast.Node(variable("n")), c.Clauses[0].Pattern)
	assert.Equal(t, ast.Node(call("is_integer", variable("n"))), c.Clauses[0].Guard)
}

func TestExtractCaseMalformedClauseDegrades(t *testing.T) {
	node := call("case", variable("x"), doBlock(list(
		arrow(list(atom("ok")), atom("yes")),
		str("garbage"),
	)))

	c, err := ExtractCase(node, quietOptions())
	require.NoError(t, err)
	require.Len(t, c.Clauses, 2)
	assert.False(t, c.Clauses[0].Malformed)
	assert.True(t, c.Clauses[1].Malformed)
	assert.Nil(t, c.Clauses[1].Pattern)
}

func TestExtractCaseIncludePatterns(t *testing.T) {
	node := call("case", variable("x"), doBlock(list(
		arrow(list(tuple(atom("ok"), variable("v"))), variable("v")),
	)))

	opts := quietOptions()
	c, err := ExtractCase(node, opts)
	require.NoError(t, err)
	assert.Nil(t, c.Clauses[0].PatternRecord)

	opts.IncludePatterns = true
	c, err = ExtractCase(node, opts)
	require.NoError(t, err)
	require.NotNil(t, c.Clauses[0].PatternRecord)
	assert.Equal(t, PatternTuple, c.Clauses[0].PatternRecord.Kind)
	assert.Equal(t, []string{"v"}, c.Clauses[0].PatternRecord.Bindings)
}

func TestExtractCaseRejects(t *testing.T) {
	var kindErr *KindError

	_, err := ExtractCase(call("case", variable("x")), quietOptions())
	require.ErrorAs(t, err, &kindErr)

	// A do body that is not a clause list fails.
	_, err = ExtractCase(call("case", variable("x"), doBlock(atom("ok"))), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

func TestExtractWith(t *testing.T) {
	node := call("with",
		call("<-", tuple(atom("ok"), variable("user")), call("fetch_user", variable("id"))),
		call("=", variable("name"), call("format", variable("user"))),
		call("<-", tuple(atom("ok"), variable("perms")), call("fetch_perms", variable("user"))),
		list(
			pair("do", tuple(variable("name"), variable("perms"))),
			pair("else", list(
				arrow(list(atom("error")), atom("denied")),
			)),
		),
	)

	w, err := ExtractWith(node, quietOptions())
	require.NoError(t, err)
	require.Len(t, w.Clauses, 3)
	assert.Equal(t, WithMatch, w.Clauses[0].Kind)
	assert.Equal(t, WithBareMatch, w.Clauses[1].Kind)
	assert.Equal(t, WithMatch, w.Clauses[2].Kind)
	assert.Len(t, w.Body, 1)
	assert.True(t, w.HasElse)
	require.Len(t, w.ElseClauses, 1)
	assert.Equal(t, 3, w.Metadata["clause_count"])
}

func TestExtractWithBareExpressionClause(t *testing.T) {
	node := call("with",
		call("log_attempt", variable("id")),
		call("<-", atom("ok"), call("check", variable("id"))),
		doBlock(atom("granted")),
	)

	w, err := ExtractWith(node, quietOptions())
	require.NoError(t, err)
	require.Len(t, w.Clauses, 2)
	assert.Equal(t, WithBareMatch, w.Clauses[0].Kind)
	assert.Nil(t, w.Clauses[0].Pattern)
	assert.Equal(t, WithMatch, w.Clauses[1].Kind)
	assert.False(t, w.HasElse)
}

func TestExtractWithRejects(t *testing.T) {
	var kindErr *KindError
	_, err := ExtractWith(call("with"), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

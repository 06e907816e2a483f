package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/exast/ast"
)

func TestClassifyPattern(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want PatternKind
		ok   bool
	}{
		{"variable", variable("x"), PatternVariable, true},
		{"wildcard", variable("_"), PatternWildcard, true},
		{"special-form name", variable("def"), "", false},
		{"pin", call("^", variable("x")), PatternPin, true},
		{"as-pattern", call("=", variable("x"), tuple(atom("ok"), variable("v"))), PatternAs, true},
		{"struct", call("%", aliases("User"), call("%{}", pair("name", variable("n")))), PatternStruct, true},
		{"tagged map", call("%{}", pair("a", variable("x"))), PatternMap, true},
		{"map node", &ast.Map{Pairs: []ast.Pair{{Key: atom("a"), Value: variable("x")}}}, PatternMap, true},
		{"binary", call("<<>>", variable("head")), PatternBinary, true},
		{"tagged tuple", call("{}", variable("a"), variable("b"), variable("c")), PatternTuple, true},
		{"bare tuple", tuple(atom("ok"), variable("v")), PatternTuple, true},
		{"cons cell", call("|", variable("h"), variable("t")), PatternList, true},
		{"list", list(variable("a"), variable("b")), PatternList, true},
		{"atom literal", atom("ok"), PatternLiteral, true},
		{"integer literal", integer(1), PatternLiteral, true},
		{"guarded variable", call("when", variable("x"), call("is_atom", variable("x"))), PatternVariable, true},
		{"when with single arg", call("when", variable("x")), "", false},
		{"when with no args", call("when"), "", false},
		{"ordinary call", call("foo", variable("x")), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ClassifyPattern(tt.node)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

func TestExtractPatternGuardUnwrap(t *testing.T) {
	guarded := call("when",
		tuple(atom("ok"), variable("v")),
		call("is_integer", variable("v")),
	)

	p, err := ExtractPattern(guarded)
	require.NoError(t, err)
	assert.Equal(t, PatternTuple, p.Kind)
	assert.Equal(t, call("is_integer", variable("v")), p.Guard)
	assert.Equal(t, []string{"v"}, p.Bindings)
	assert.Equal(t, true, p.Metadata["guarded"])
}

func TestExtractPatternTruncatedWhen(t *testing.T) {
	// A when with no guard side has no pattern/guard split; it must come
	// back as a typed error, never blow up downstream.
	_, err := ExtractPattern(call("when", variable("x")))
	var kindErr *KindError
	require.ErrorAs(t, err, &kindErr)

	_, err = ExtractPattern(call("when", tuple(atom("ok"), variable("v"))))
	require.ErrorAs(t, err, &kindErr)
}

func TestExtractPatternStruct(t *testing.T) {
	node := call("%",
		aliases("Accounts", "User"),
		call("%{}", pair("name", variable("n")), pair("age", variable("a"))),
	)

	p, err := ExtractPattern(node)
	require.NoError(t, err)
	assert.Equal(t, PatternStruct, p.Kind)
	assert.Equal(t, "User", p.Name)
	assert.Equal(t, []string{"Accounts", "User"}, p.Metadata["struct"])
	assert.Equal(t, []string{"n", "a"}, p.Bindings)
	assert.Len(t, p.Elements, 2)
}

func TestCollectBindings(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want []string
	}{
		{"variable", variable("x"), []string{"x"}},
		{"wildcard", variable("_"), nil},
		{"pin", call("^", variable("x")), nil},
		{"literal", atom("ok"), nil},
		{
			"tuple dedup keeps first occurrence",
			tuple(variable("a"), variable("b"), variable("a")),
			[]string{"a", "b"},
		},
		{
			"map values bind, keys do not",
			&ast.Map{Pairs: []ast.Pair{
				{Key: atom("name"), Value: variable("n")},
				{Key: variable("k"), Value: variable("v")},
			}},
			[]string{"n", "v"},
		},
		{
			"as-pattern binds both sides",
			call("=", variable("whole"), tuple(atom("ok"), variable("v"))),
			[]string{"whole", "v"},
		},
		{
			"guard side does not bind",
			call("when", variable("x"), call("is_atom", variable("y"))),
			[]string{"x"},
		},
		{
			"binary segment binds before the specifier",
			call("<<>>",
				call("::", variable("len"), variable("integer")),
				call("::", variable("rest"), variable("binary")),
			),
			[]string{"len", "rest"},
		},
		{
			"cons cell",
			call("|", variable("h"), variable("t")),
			[]string{"h", "t"},
		},
		{
			"struct values bind",
			call("%", aliases("User"), call("%{}", pair("name", variable("n")))),
			[]string{"n"},
		},
		{
			"nested mix",
			list(
				variable("a"),
				call("^", variable("pinned")),
				tuple(variable("b"), variable("_")),
			),
			[]string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectBindings([]ast.Node{tt.node})
			assert.Equal(t, tt.want, got)
		})
	}
}

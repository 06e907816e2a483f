package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/exast/ast"
)

func TestClassifyMacro(t *testing.T) {
	tests := []struct {
		tag  string
		want MacroCategory
	}{
		{"def", CategoryDefinition},
		{"defimpl", CategoryDefinition},
		{"case", CategoryControlFlow},
		{"reraise", CategoryControlFlow},
		{"import", CategoryImport},
		{"use", CategoryImport},
		{"quote", CategoryQuote},
		{"unquote_splicing", CategoryQuote},
		{"@", CategoryAttribute},
		{"my_macro", CategoryCustom},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMacro(tt.tag))
		})
	}
}

func TestExtractMacroInvocationLocal(t *testing.T) {
	inv, err := ExtractMacroInvocation(call("defmodule", aliases("Foo"), doBlock(atom("ok"))))
	require.NoError(t, err)
	assert.Equal(t, "defmodule", inv.Name)
	assert.Equal(t, CategoryDefinition, inv.Category)
	assert.Empty(t, inv.Module)
	assert.Len(t, inv.Arguments, 2)
}

func TestExtractMacroInvocationAttribute(t *testing.T) {
	inv, err := ExtractMacroInvocation(attr("moduledoc", str("docs")))
	require.NoError(t, err)
	assert.Equal(t, "moduledoc", inv.Name)
	assert.Equal(t, CategoryAttribute, inv.Category)
}

func TestExtractMacroInvocationLibrary(t *testing.T) {
	tests := []struct {
		name     string
		receiver *ast.Call
		function string
		want     MacroCategory
	}{
		{"logger", aliases("Logger"), "info", CategoryLibrary},
		{"ecto query", aliases("Ecto", "Query"), "from", CategoryLibrary},
		{"router", aliases("MyAppWeb", "Router"), "get", CategoryLibrary},
		{"known name, wrong module", aliases("MyMod"), "info", CategoryCustom},
		{"unknown name", aliases("Logger"), "frobnicate", CategoryCustom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := ExtractMacroInvocation(&ast.RemoteCall{
				Receiver: tt.receiver,
				Function: tt.function,
				Args:     []ast.Node{str("x")},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.Category)
			assert.Equal(t, tt.function, inv.Name)
		})
	}
}

func TestExtractMacroInvocationRejects(t *testing.T) {
	var kindErr *KindError
	_, err := ExtractMacroInvocation(atom("ok"))
	require.ErrorAs(t, err, &kindErr)
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractStruct(t *testing.T) {
	node := call("defstruct", list(
		atom("id"),
		pair("name", str("anonymous")),
		pair("age", integer(0)),
	))

	s, err := ExtractStruct(node)
	require.NoError(t, err)
	assert.False(t, s.IsException)
	require.Len(t, s.Fields, 3)

	assert.Equal(t, "id", s.Fields[0].Name)
	assert.False(t, s.Fields[0].HasDefault)

	assert.Equal(t, "name", s.Fields[1].Name)
	assert.True(t, s.Fields[1].HasDefault)
	assert.Equal(t, str("anonymous"), s.Fields[1].Default)

	assert.Equal(t, 3, s.Metadata["field_count"])
}

func TestExtractStructRejects(t *testing.T) {
	var kindErr *KindError

	_, err := ExtractStruct(call("defstruct", atom("not_a_list")))
	require.ErrorAs(t, err, &kindErr)

	_, err = ExtractStruct(call("def", call("f")))
	require.ErrorAs(t, err, &kindErr)
}

func TestExtractStructFromBody(t *testing.T) {
	node := call("defmodule", aliases("User"), doBlock(block(
		attr("enforce_keys", list(atom("id"), atom("email"))),
		attr("derive", list(aliases("Inspect"))),
		call("defstruct", list(atom("id"), atom("email"), pair("active", atom("true")))),
	)))

	s, err := ExtractStructFromBody(node, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "email"}, s.EnforcedKeys)
	require.Len(t, s.Derives, 1)
	assert.Equal(t, []string{"Inspect"}, s.Derives[0].Protocol)
	assert.Len(t, s.Fields, 3)
	assert.Equal(t, 2, s.Metadata["enforced_count"])
}

func TestExtractStructFromBodySingleEnforcedKey(t *testing.T) {
	body := block(
		attr("enforce_keys", atom("id")),
		call("defstruct", list(atom("id"))),
	)

	s, err := ExtractStructFromBody(body, quietOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, s.EnforcedKeys)
}

func TestExtractException(t *testing.T) {
	node := call("defmodule", aliases("NotFoundError"), doBlock(block(
		call("defexception", list(pair("message", str("not found")), atom("resource"))),
		call("def",
			call("message", variable("e")),
			doBlock(call("<>", str("missing: "), variable("e"))),
		),
	)))

	s, err := ExtractStructFromBody(node, quietOptions())
	require.NoError(t, err)
	assert.True(t, s.IsException)
	assert.Equal(t, "not found", s.MessageDefault)
	assert.True(t, s.HasMessageCallback)
}

func TestExtractExceptionGuardedMessageHead(t *testing.T) {
	body := block(
		call("defexception", list(atom("message"))),
		call("def",
			call("when",
				call("message", variable("e")),
				call("is_map", variable("e")),
			),
			doBlock(str("boom")),
		),
	)

	s, err := ExtractStructFromBody(body, quietOptions())
	require.NoError(t, err)
	assert.True(t, s.HasMessageCallback)
}

func TestExtractStructFromBodyWithoutStruct(t *testing.T) {
	var kindErr *KindError
	_, err := ExtractStructFromBody(block(atom("ok")), quietOptions())
	require.ErrorAs(t, err, &kindErr)
}

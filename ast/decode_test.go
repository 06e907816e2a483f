package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	n, err := Decode([]byte(`{"atom": "ok"}`))
	require.NoError(t, err)
	assert.Equal(t, &Atom{Name: "ok"}, n)

	n, err = Decode([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, &Integer{Value: 42}, n)

	n, err = Decode([]byte(`3.25`))
	require.NoError(t, err)
	assert.Equal(t, &Float{Value: 3.25}, n)

	n, err = Decode([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, &String{Value: "hello"}, n)
}

func TestDecode_BooleanAndNilAtoms(t *testing.T) {
	n, err := Decode([]byte(`true`))
	require.NoError(t, err)
	assert.Equal(t, &Atom{Name: "true"}, n)

	n, err = Decode([]byte(`false`))
	require.NoError(t, err)
	assert.Equal(t, &Atom{Name: "false"}, n)

	n, err = Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Equal(t, &Atom{Name: "nil"}, n)

	n, err = Decode([]byte(`[true, null]`))
	require.NoError(t, err)
	list, ok := n.(*List)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, &Atom{Name: "nil"}, list.Elements[1])
}

func TestDecode_Call(t *testing.T) {
	data := []byte(`{"call": {"tag": "if", "meta": {"line": 3, "column": 1}, "args": [{"var": {"name": "x"}}, [{"tuple": [{"atom": "do"}, 1]}]]}}`)

	n, err := Decode(data)
	require.NoError(t, err)

	call, ok := n.(*Call)
	require.True(t, ok)
	assert.Equal(t, "if", call.Tag)
	assert.Equal(t, 3, call.Meta.Line)
	require.Len(t, call.Args, 2)

	v, ok := call.Args[0].(*Variable)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name)

	assert.True(t, IsKeywordList(call.Args[1]))
}

func TestDecode_RemoteCall(t *testing.T) {
	data := []byte(`{"remote": {"receiver": {"atom": "Enum"}, "function": "map", "meta": {"line": 7}, "args": [[1, 2]]}}`)

	n, err := Decode(data)
	require.NoError(t, err)

	rc, ok := n.(*RemoteCall)
	require.True(t, ok)
	assert.Equal(t, "map", rc.Function)
	assert.Equal(t, &Atom{Name: "Enum"}, rc.Receiver)
	require.Len(t, rc.Args, 1)
}

func TestDecode_MapAndTuple(t *testing.T) {
	n, err := Decode([]byte(`{"map": [[{"atom": "a"}, 1], [{"atom": "b"}, 2]]}`))
	require.NoError(t, err)
	m, ok := n.(*Map)
	require.True(t, ok)
	require.Len(t, m.Pairs, 2)
	assert.Equal(t, &Atom{Name: "a"}, m.Pairs[0].Key)

	n, err = Decode([]byte(`{"tuple": [{"atom": "ok"}, {"var": {"name": "result"}}]}`))
	require.NoError(t, err)
	tup, ok := n.(*Tuple)
	require.True(t, ok)
	require.Len(t, tup.Elements, 2)
}

func TestDecode_Sigil(t *testing.T) {
	data := []byte(`{"call": {"tag": "sigil_r", "meta": {"line": 1, "delimiter": "/"}, "args": []}}`)

	n, err := Decode(data)
	require.NoError(t, err)
	call := n.(*Call)
	assert.Equal(t, "/", call.Meta.Delimiter)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`{"unknown": 1}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"map": [[1]]}`))
	assert.Error(t, err)

	_, err = Decode([]byte(``))
	assert.Error(t, err)
}

/*
File    : chai/builtin/builtin_test.go
Package : builtin
*/
package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chailang/chai/object"
)

func TestLen(t *testing.T) {
	table := New(&bytes.Buffer{})
	result := table["len"].Fn(&object.String{Value: "hello"})
	assert.Equal(t, int32(5), result.(*object.Integer).Value)

	result = table["len"].Fn(&object.Array{Elements: []object.Value{&object.Integer{Value: 1}}})
	assert.Equal(t, int32(1), result.(*object.Integer).Value)
}

func TestLenWrongType(t *testing.T) {
	table := New(&bytes.Buffer{})
	result := table["len"].Fn(&object.Integer{Value: 5})
	errObj, ok := result.(*object.Error)
	assert.True(t, ok)
	assert.Contains(t, errObj.Message, "Unknown operation")
}

func TestPushReturnsNewArray(t *testing.T) {
	table := New(&bytes.Buffer{})
	original := &object.Array{Elements: []object.Value{&object.Integer{Value: 1}}}
	result := table["push"].Fn(original, &object.Integer{Value: 2})

	pushed := result.(*object.Array)
	assert.Len(t, pushed.Elements, 2)
	assert.Len(t, original.Elements, 1, "push must not mutate its argument")
}

func TestPrintWritesSerializedArgumentsAndReturnsLast(t *testing.T) {
	var buf bytes.Buffer
	table := New(&buf)
	result := table["print"].Fn(&object.Integer{Value: 1}, &object.String{Value: "a"})

	assert.Equal(t, "1 a\n", buf.String())
	assert.Equal(t, "a", result.Inspect())
}

func TestPrintSerializesArraysWithoutSpaces(t *testing.T) {
	var buf bytes.Buffer
	table := New(&buf)
	arr := &object.Array{Elements: []object.Value{
		&object.Integer{Value: 1}, &object.Integer{Value: 2},
	}}
	table["print"].Fn(arr)
	assert.Equal(t, "[1,2]\n", buf.String())
}

func TestPrintWithNoArgumentsWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	table := New(&buf)
	result := table["print"].Fn()

	assert.Equal(t, "", buf.String())
	assert.Same(t, object.Nil, result.(*object.Print).Value)
}

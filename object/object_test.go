/*
File    : chai/object/object_test.go
Package : object
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	assert.Equal(t, "5", (&Integer{Value: 5}).Inspect())
	assert.Equal(t, "true", (&Boolean{Value: true}).Inspect())
	assert.Equal(t, "hello", (&String{Value: "hello"}).Inspect())
	assert.Equal(t, "null", Nil.Inspect())
	assert.Equal(t, "[1,2,3]", (&Array{Elements: []Value{
		&Integer{Value: 1}, &Integer{Value: 2}, &Integer{Value: 3},
	}}).Inspect())
	assert.Equal(t, "[[1,2],3]", (&Array{Elements: []Value{
		&Array{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}},
		&Integer{Value: 3},
	}}).Inspect())
}

func TestNativeBoolInterning(t *testing.T) {
	assert.Same(t, True, NativeBool(true))
	assert.Same(t, False, NativeBool(false))
}

func TestIsTruthy(t *testing.T) {
	assert.True(t, IsTruthy(&Integer{Value: 0}))
	assert.True(t, IsTruthy(&String{Value: ""}))
	assert.True(t, IsTruthy(True))
	assert.False(t, IsTruthy(False))
	assert.False(t, IsTruthy(Nil))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&Error{Message: "boom"}))
	assert.False(t, IsError(&Integer{Value: 1}))
	assert.False(t, IsError(nil))
}

func TestEnvironment_GetWalksChain(t *testing.T) {
	root := NewEnvironment()
	root.Bind("x", &Integer{Value: 1})
	child := NewEnclosedEnvironment(root)

	val, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &Integer{Value: 1}, val)

	_, ok = child.Get("missing")
	assert.False(t, ok)
}

func TestEnvironment_BindShadowsInnermostOnly(t *testing.T) {
	root := NewEnvironment()
	root.Bind("x", &Integer{Value: 1})
	child := NewEnclosedEnvironment(root)
	child.Bind("x", &Integer{Value: 2})

	childVal, _ := child.Get("x")
	assert.Equal(t, int32(2), childVal.(*Integer).Value)

	rootVal, _ := root.Get("x")
	assert.Equal(t, int32(1), rootVal.(*Integer).Value)
}

func TestEnvironment_AssignWalksChainToOwningScope(t *testing.T) {
	root := NewEnvironment()
	root.Bind("counter", &Integer{Value: 0})
	child := NewEnclosedEnvironment(root)

	ok := child.Assign("counter", &Integer{Value: 5})
	assert.True(t, ok)

	// the binding was mutated in root, not shadowed in child
	_, declaredInChild := child.store["counter"]
	assert.False(t, declaredInChild)

	rootVal, _ := root.Get("counter")
	assert.Equal(t, int32(5), rootVal.(*Integer).Value)
}

func TestEnvironment_AssignToUndeclaredNameFails(t *testing.T) {
	root := NewEnvironment()
	ok := root.Assign("nope", &Integer{Value: 1})
	assert.False(t, ok)
}

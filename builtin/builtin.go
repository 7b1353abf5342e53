/*
File    : chai/builtin/builtin.go
Package : builtin
*/

// Package builtin implements the language's fixed built-in function
// library: len, push, and print. Each is exposed as an object.Builtin
// in a name-keyed table that the evaluator consults when a name has no
// binding anywhere in the environment chain.
package builtin

import (
	"fmt"
	"io"
	"strings"

	"github.com/chailang/chai/object"
)

// New constructs the built-in table bound to writer, the destination
// `print` writes to. Each call produces a fresh set of closures so
// tests can swap in a buffer and assert on its contents, matching the
// teacher's io.Writer-injectable callback convention.
func New(writer io.Writer) map[string]*object.Builtin {
	return map[string]*object.Builtin{
		"len":   {Name: "len", Fn: lenFn},
		"push":  {Name: "push", Fn: pushFn},
		"print": {Name: "print", Fn: printFn(writer)},
	}
}

func arityError(name string, want, got int) *object.Error {
	return &object.Error{Message: fmt.Sprintf("Wrong number of arguments to %s : want=%d got=%d", name, want, got)}
}

// lenFn reports the length of a String (its byte count) or an Array
// (its element count). Any other argument type is a type error.
func lenFn(args ...object.Value) object.Value {
	if len(args) != 1 {
		return arityError("len", 1, len(args))
	}
	switch arg := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int32(len(arg.Value))}
	case *object.Array:
		return &object.Integer{Value: int32(len(arg.Elements))}
	default:
		return &object.Error{Message: fmt.Sprintf("Unknown operation : len(%s)", arg.Kind())}
	}
}

// pushFn appends value to array and returns a brand new Array, never
// mutating the argument in place — arrays are immutable from the
// language's point of view.
func pushFn(args ...object.Value) object.Value {
	if len(args) != 2 {
		return arityError("push", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return &object.Error{Message: fmt.Sprintf("Unknown operation : push(%s, ...)", args[0].Kind())}
	}

	newElements := make([]object.Value, len(arr.Elements)+1)
	copy(newElements, arr.Elements)
	newElements[len(arr.Elements)] = args[1]
	return &object.Array{Elements: newElements}
}

// printFn writes the serialized form of every argument, space
// separated, followed by a newline, then returns an object.Print
// wrapping the last argument (or object.Nil if called with none).
func printFn(writer io.Writer) object.BuiltinFunction {
	return func(args ...object.Value) object.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = serialize(a)
		}
		var last object.Value = object.Nil
		if len(args) > 0 {
			fmt.Fprintln(writer, strings.Join(parts, " "))
			last = args[len(args)-1]
		}
		return &object.Print{Value: last}
	}
}

// serialize renders a value the way `print` displays it: integers as
// decimal, booleans as true/false, strings verbatim (no quoting), and
// arrays as a comma-joined, unspaced bracket list applied recursively
// — exactly object.Value.Inspect for every concrete type chai has.
func serialize(v object.Value) string {
	return v.Inspect()
}

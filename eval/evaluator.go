/*
File    : chai/eval/evaluator.go
Package : eval
*/

// Package eval implements the tree-walking evaluator: Eval recurses
// over an ast.Node, threading an object.Environment for variable
// scope and short-circuiting on the first object.Error it produces.
// There is no panic-driven control flow here; Return and Error are
// ordinary object.Value sentinels that Eval's callers inspect.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/chailang/chai/ast"
	"github.com/chailang/chai/builtin"
	"github.com/chailang/chai/object"
)

// Evaluator owns the built-in function table and the writer `print`
// sends output to. It carries no other mutable state — scope lives
// entirely in the object.Environment passed to Eval.
type Evaluator struct {
	Builtins map[string]*object.Builtin
	Writer   io.Writer
}

// New creates an Evaluator that writes print output to os.Stdout.
func New() *Evaluator {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates an Evaluator whose `print` builtin writes to
// writer, the injection point tests use to capture output instead of
// the real stdout.
func NewWithWriter(writer io.Writer) *Evaluator {
	return &Evaluator{
		Builtins: builtin.New(writer),
		Writer:   writer,
	}
}

// Eval dispatches on node's concrete type and returns the resulting
// runtime value. Every branch that recurses into a sub-expression
// checks the result with object.IsError immediately afterward and
// bails out early, which is how an Error anywhere in a tree propagates
// all the way to the top without extra plumbing.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch node := node.(type) {

	case *ast.Program:
		return e.evalProgram(node, env)

	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.BlockStatement:
		return e.evalBlockStatement(node, env)

	case *ast.LetStatement:
		val := e.Eval(node.Value, env)
		if object.IsError(val) {
			return val
		}
		env.Bind(node.Name.Value, val)
		return val

	case *ast.ReturnStatement:
		val := e.Eval(node.ReturnValue, env)
		if object.IsError(val) {
			return val
		}
		return &object.ReturnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.Boolean:
		return object.NativeBool(node.Value)

	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := e.Eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return e.evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		if node.Operator == "=" {
			return e.evalAssignExpression(node, env)
		}
		left := e.Eval(node.Left, env)
		if object.IsError(left) {
			return left
		}
		right := e.Eval(node.Right, env)
		if object.IsError(right) {
			return right
		}
		return e.evalInfixExpression(node.Operator, left, right)

	case *ast.IfExpression:
		return e.evalIfExpression(node, env)

	case *ast.WhileExpression:
		return e.evalWhileExpression(node, env)

	case *ast.FunctionLiteral:
		params := make([]string, len(node.Parameters))
		for i, p := range node.Parameters {
			params[i] = p.Value
		}
		return &object.Function{Parameters: params, Body: node.Body, Env: env}

	case *ast.CallExpression:
		return e.evalCallExpression(node, env)

	case *ast.ArrayLiteral:
		elements := e.evalExpressions(node.Elements, env)
		if len(elements) == 1 && object.IsError(elements[0]) {
			return elements[0]
		}
		return &object.Array{Elements: elements}

	case *ast.IndexExpression:
		return e.evalIndexExpression(node, env)
	}

	return object.Nil
}

// evalProgram runs every top-level statement in order. A ReturnValue
// at the program's root is unwrapped to its payload (there's no
// enclosing call to return from), while an Error stops evaluation
// immediately and is returned as-is. A Print sentinel is consumed
// here too: print's own output already went to the writer, so the
// statement's value collapses to Null rather than leaking the printed
// value through as the program's result.
func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.Nil

	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)

		switch val := result.(type) {
		case *object.ReturnValue:
			return val.Value
		case *object.Error:
			return val
		case *object.Print:
			result = object.Nil
		}
	}

	return result
}

// evalBlockStatement runs a block's statements in order WITHOUT
// unwrapping a ReturnValue, so it can keep propagating up through
// nested blocks (if/while bodies) until a function call unwraps it.
// Like evalProgram, a Print sentinel collapses to Null immediately —
// it must never be mistaken for a Return/Error by an enclosing block.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Value {
	var result object.Value = object.Nil

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		if result == nil {
			continue
		}
		if _, ok := result.(*object.Print); ok {
			result = object.Nil
			continue
		}
		switch result.Kind() {
		case object.ReturnKind, object.ErrorKind:
			return result
		}
	}

	return result
}

// evalIdentifier resolves a name against the environment first and
// the builtin table second: builtins are only consulted once the whole
// environment chain comes up empty, so a user binding with a builtin's
// name shadows that builtin.
func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Value {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	if b, ok := e.Builtins[node.Value]; ok {
		return b
	}
	return &object.Error{Message: fmt.Sprintf("Variable : %s not found", node.Value)}
}

func (e *Evaluator) evalExpressions(exps []ast.Expression, env *object.Environment) []object.Value {
	result := make([]object.Value, 0, len(exps))
	for _, exp := range exps {
		evaluated := e.Eval(exp, env)
		if object.IsError(evaluated) {
			return []object.Value{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}

/*
File    : chai/eval/expressions.go
Package : eval
*/
package eval

import (
	"fmt"

	"github.com/chailang/chai/ast"
	"github.com/chailang/chai/object"
)

func (e *Evaluator) evalPrefixExpression(operator string, right object.Value) object.Value {
	switch operator {
	case "!":
		return object.NativeBool(!object.IsTruthy(right))
	case "-":
		intVal, ok := right.(*object.Integer)
		if !ok {
			return &object.Error{Message: fmt.Sprintf("Unknown operation : -%s", right.Kind())}
		}
		return &object.Integer{Value: -intVal.Value}
	default:
		return &object.Error{Message: fmt.Sprintf("Unknown operation : %s%s", operator, right.Kind())}
	}
}

func (e *Evaluator) evalInfixExpression(operator string, left, right object.Value) object.Value {
	switch {
	case left.Kind() == object.IntegerKind && right.Kind() == object.IntegerKind:
		return e.evalIntegerInfixExpression(operator, left.(*object.Integer), right.(*object.Integer))
	case left.Kind() == object.StringKind && right.Kind() == object.StringKind:
		return e.evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	case operator == "==":
		return object.NativeBool(left == right)
	case operator == "!=":
		return object.NativeBool(left != right)
	default:
		return &object.Error{Message: fmt.Sprintf("Type mismatch : %s %s %s", left.Kind(), operator, right.Kind())}
	}
}

func (e *Evaluator) evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Value {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return &object.Error{Message: "Division by zero"}
		}
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return &object.Error{Message: fmt.Sprintf("Type mismatch : %s %s %s", left.Kind(), operator, right.Kind())}
	}
}

func (e *Evaluator) evalStringInfixExpression(operator string, left, right *object.String) object.Value {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return &object.Error{Message: fmt.Sprintf("Type mismatch : %s %s %s", left.Kind(), operator, right.Kind())}
	}
}

// evalAssignExpression implements bare `name = value` reassignment.
// It requires the left-hand side to be a plain identifier and walks
// the scope chain (via object.Environment.Assign) to mutate whichever
// enclosing scope originally declared it; assigning to a name that
// was never declared with `let` is an error rather than an implicit
// declaration.
func (e *Evaluator) evalAssignExpression(node *ast.InfixExpression, env *object.Environment) object.Value {
	ident, ok := node.Left.(*ast.Identifier)
	if !ok {
		return &object.Error{Message: "Left hand side of assignment must be an identifier"}
	}

	val := e.Eval(node.Right, env)
	if object.IsError(val) {
		return val
	}

	if !env.Assign(ident.Value, val) {
		return &object.Error{Message: fmt.Sprintf("Variable : %s not found", ident.Value)}
	}
	return val
}

func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Value {
	condition := e.Eval(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}

	if object.IsTruthy(condition) {
		return e.Eval(node.Consequence, env)
	} else if node.Alternative != nil {
		return e.Eval(node.Alternative, env)
	}
	return object.Nil
}

// evalWhileExpression re-evaluates Condition before every iteration,
// stopping immediately if either the condition or an iteration of the
// body produces an Error or a ReturnValue (which must keep propagating
// to the enclosing function call). The expression itself always
// yields Nil — the language has no use for a while loop's result.
func (e *Evaluator) evalWhileExpression(node *ast.WhileExpression, env *object.Environment) object.Value {
	for {
		condition := e.Eval(node.Condition, env)
		if object.IsError(condition) {
			return condition
		}
		if !object.IsTruthy(condition) {
			return object.Nil
		}

		result := e.Eval(node.Body, env)
		if result != nil {
			kind := result.Kind()
			if kind == object.ErrorKind || kind == object.ReturnKind {
				return result
			}
		}
	}
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Value {
	function := e.Eval(node.Function, env)
	if object.IsError(function) {
		return function
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && object.IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(function, args)
}

func (e *Evaluator) applyFunction(fn object.Value, args []object.Value) object.Value {
	switch fn := fn.(type) {
	case *object.Function:
		if len(args) != len(fn.Parameters) {
			return &object.Error{Message: fmt.Sprintf(
				"Wrong number of arguments : want=%d got=%d", len(fn.Parameters), len(args))}
		}

		body, ok := fn.Body.(*ast.BlockStatement)
		if !ok {
			return &object.Error{Message: "Malformed function body"}
		}

		callEnv := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Parameters {
			callEnv.Bind(param, args[i])
		}

		result := e.Eval(body, callEnv)
		if returnValue, ok := result.(*object.ReturnValue); ok {
			return returnValue.Value
		}
		return result

	case *object.Builtin:
		return fn.Fn(args...)

	default:
		return &object.Error{Message: fmt.Sprintf("Not a function : %s", fn.Kind())}
	}
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Value {
	left := e.Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	index := e.Eval(node.Index, env)
	if object.IsError(index) {
		return index
	}

	arr, ok := left.(*object.Array)
	if !ok {
		return &object.Error{Message: fmt.Sprintf("Type mismatch : %s[%s]", left.Kind(), index.Kind())}
	}
	idx, ok := index.(*object.Integer)
	if !ok {
		return &object.Error{Message: fmt.Sprintf("Type mismatch : %s[%s]", left.Kind(), index.Kind())}
	}

	if idx.Value < 0 || int(idx.Value) >= len(arr.Elements) {
		return &object.Error{Message: "Array out of bound"}
	}
	return arr.Elements[idx.Value]
}

package internal

import (
	"fmt"
	"strconv"
)

type exec struct {
	state *interpreterState

	globals *env
	env     *env
}

func (e *exec) interpret() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isReturn := r.(returnValue); isReturn {
				// Top-level return, stop the run
				ok = true
				return
			}
			if e.state.runtimeError == nil {
				panic(r)
			}
			e.state.printRuntimeError()
			ok = false
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
	return true
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	e.state.logger.Println(stringify(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val interface{} = unbound
	if stmt.initializer != nil {
		val = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.lexeme, val)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.state, e.env))
	return nil
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	// Restore the outer scope on every exit path, a return
	// statement unwinds right through here
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		s.accept(e)
	}
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.boolean(stmt.condition.accept(e), stmt.keyword) {
		stmt.thenBranch.accept(e)
	} else if stmt.elseBranch != nil {
		stmt.elseBranch.accept(e)
	}
	return nil
}

func (e *exec) visitWhileStmt(stmt *whileStmt) R {
	for e.boolean(stmt.condition.accept(e), stmt.keyword) {
		stmt.body.accept(e)
	}
	return nil
}

func (e *exec) visitFnStmt(stmt *fnStmt) R {
	e.env.define(stmt.name.lexeme, &function{
		declaration: stmt,
		closure:     e.env,
	})
	return nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) R {
	var value interface{}
	if stmt.value != nil {
		value = stmt.value.accept(e)
	}
	panic(returnValue{value: value})
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := expr.value.accept(e)
	e.env.assign(expr.name, val)
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)
	switch expr.operator.token {
	case tkEqualEqual:
		return equals(left, right)
	case tkBangEqual:
		return !equals(left, right)
	case tkGreater:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum <= rightNum
	case tkPlus:
		return e.add(expr, left, right)
	case tkMinus:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum - rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum / rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(expr, left, right)
		return leftNum * rightNum
	}
	e.state.runtimeErr(errOnlyNumbers, expr.operator)
	return nil
}

// add overloads '+' for two numbers or two strings
func (e *exec) add(binExpr *binaryExpr, left, right interface{}) interface{} {
	if leftStr, ok := left.(string); ok {
		if rightStr, ok := right.(string); ok {
			return leftStr + rightStr
		}
	}
	if leftNum, ok := left.(float64); ok {
		if rightNum, ok := right.(float64); ok {
			return leftNum + rightNum
		}
	}
	e.state.runtimeErr(errAddOperands, binExpr.operator)
	return nil
}

func (e *exec) getNums(binExpr *binaryExpr, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		e.state.runtimeErr(errOnlyNumbers, binExpr.operator)
	}
	rightNum, ok := right.(float64)
	if !ok {
		e.state.runtimeErr(errOnlyNumbers, binExpr.operator)
	}
	return leftNum, rightNum
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := expr.callee.accept(e)
	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = expr.arguments[i].accept(e)
	}

	fn, isFn := callee.(callable)
	if !isFn {
		e.state.runtimeErr(errOnlyFunction, expr.paren)
	}

	if len(arguments) != fn.arity() {
		e.state.runtimeErr(
			fmt.Errorf("Expected '%d' arguments but got '%d'", fn.arity(), len(arguments)),
			expr.paren,
		)
	}

	return fn.call(e, arguments)
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) R {
	left := expr.left.accept(e)

	// Only a boolean left operand short-circuits
	if leftBool, isBool := left.(bool); isBool {
		if expr.operator.token == tkOr && leftBool {
			return left
		}
		if expr.operator.token == tkAnd && !leftBool {
			return left
		}
	}

	return expr.right.accept(e)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.token {
	case tkMinus:
		if valueNum, isNum := value.(float64); isNum {
			return -valueNum
		}
	case tkBang:
		if valueBool, isBool := value.(bool); isBool {
			return !valueBool
		}
		if value == nil {
			return true
		}
	}
	e.state.runtimeErr(errInvalidUnaryOperand, expr.operator)
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

// boolean enforces that conditions evaluate to an exact boolean,
// there is no implicit coercion of other value kinds
func (e *exec) boolean(value interface{}, tk *token) bool {
	valueBool, isBool := value.(bool)
	if !isBool {
		e.state.runtimeErr(errBoolCondition, tk)
	}
	return valueBool
}

// equals follows the cross-variant-false rule: values of different
// kinds never compare equal and callables never compare equal
func equals(left, right interface{}) bool {
	switch leftVal := left.(type) {
	case nil:
		return right == nil
	case string:
		rightVal, ok := right.(string)
		return ok && leftVal == rightVal
	case float64:
		rightVal, ok := right.(float64)
		return ok && leftVal == rightVal
	case bool:
		rightVal, ok := right.(bool)
		return ok && leftVal == rightVal
	}
	return false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		return strconv.FormatBool(v)
	case callable:
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("%v", value)
}

package internal

import (
	"fmt"
	"strings"
)

// treeString renders the parsed program as parenthesized trees,
// one top-level statement per line
func (s *interpreterState) treeString() string {
	out := make([]string, 0, len(s.stmts))
	for _, stmt := range s.stmts {
		out = append(out, stmt.accept(stringVisitor{}).(string))
	}
	return strings.Join(out, "\n")
}

type stringVisitor struct{}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := "(scope"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if %v %v", stmt.condition.accept(v), stmt.thenBranch.accept(v))
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" (else %v)", stmt.elseBranch.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitWhileStmt(stmt *whileStmt) R {
	return fmt.Sprintf("(while %v %v)", stmt.condition.accept(v), stmt.body.accept(v))
}

func (v stringVisitor) visitFnStmt(stmt *fnStmt) R {
	out := "(fun " + stmt.name.lexeme + " ("
	for i, param := range stmt.params {
		out += param.lexeme
		if i < len(stmt.params)-1 {
			out += ", "
		}
	}
	out += ")"
	for _, st := range stmt.body {
		out += fmt.Sprintf(" %v", st.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) R {
	if stmt.value == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %v)", stmt.value.accept(v))
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(set %s %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	out := fmt.Sprintf("(call %v", expr.callee.accept(v))
	for _, arg := range expr.arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(v)
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	if expr.value == nil {
		return "nil"
	}
	if stringLiteral, isString := expr.value.(string); isString {
		return "\"" + stringLiteral + "\""
	}
	return fmt.Sprintf("%v", expr.value)
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}

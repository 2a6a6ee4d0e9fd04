package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
)

type parseError struct {
	err  error
	line int
}

type runtimeError struct {
	err   error
	token *token
}

// interpreterState is shared by the lexer, parser and evaluator of one run
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []parseError
	runtimeError *runtimeError

	logger IPrinter
}

func (s *interpreterState) setError(err error, line int) {
	s.errors = append(s.errors, parseError{
		err:  err,
		line: line,
	})
}

func (s *interpreterState) fatalError(err error, line int) {
	s.setError(err, line)
	panic(err)
}

func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.runtimeError = &runtimeError{
		err:   err,
		token: tk,
	}
	panic(err)
}

// Valid returns true if no scan or parse error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// PrintErrors writes accumulated diagnostics, returns true if any were printed
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, color.Red(fmt.Sprintf("Error on line %d\n\t%s", e.line, e.err)))
	}
	return !s.Valid()
}

func (s *interpreterState) printRuntimeError() {
	runErr := s.runtimeError
	s.logger.Fprintf(
		os.Stderr,
		"%s",
		color.Red(fmt.Sprintf(
			"Runtime Error on line %d\n\t%s: %s\n",
			runErr.token.line,
			runErr.err.Error(),
			runErr.token.lexeme,
		)),
	)
}

// Lexer errors
var errIllegalChar = errors.New("Unexpected character")
var errUnclosedString = errors.New("Unterminated string")

// Parser errors
var errUnexpectedEOF = errors.New("Unexpected end of file")
var errExpectedExpression = errors.New("Expect expression")
var errUnclosedParen = errors.New("Expect ')' after expression")
var errExpectedParen = errors.New("Expect '(' here")
var errExpectedSemicolon = errors.New("Expect ';' after statement")
var errExpectedVarName = errors.New("Expect variable name")
var errExpectedFunctionName = errors.New("Expect function name")
var errExpectedParamName = errors.New("Expect parameter name")
var errExpectedLeftBrace = errors.New("Expect '{' before body")
var errExpectedRightBrace = errors.New("Expect '}' after block")
var errInvalidAssignTarget = errors.New("Invalid assignment target")
var errMaxArguments = errors.New("Max number of arguments is 255")
var errMaxParameters = errors.New("Max number of parameters is 255")

// Runtime errors
var errUndefinedVar = errors.New("Undefined variable")
var errOnlyFunction = errors.New("Can only call functions")
var errOnlyNumbers = errors.New("Operands must be numbers")
var errAddOperands = errors.New("Operands must be two numbers or two strings")
var errInvalidUnaryOperand = errors.New("Invalid operand for unary operator")
var errBoolCondition = errors.New("Condition must evaluate to a boolean")

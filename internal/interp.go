package internal

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	state := &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: p,
	}
	lexer := &lexer{
		line:  1,
		state: state,
	}
	parser := &parser{
		state: state,
	}

	start := time.Now()
	lexer.scan()
	log.Debugf("scanned %d tokens in %s", len(state.tokens), time.Since(start))

	if state.PrintErrors() {
		return false
	}

	start = time.Now()
	parser.parse()
	log.Debugf("parsed %d statements in %s", len(state.stmts), time.Since(start))

	if state.PrintErrors() {
		return false
	}

	if log.GetLevel() >= log.DebugLevel {
		log.Debugf("ast dump\n%s", state.treeString())
	}

	exec := &exec{
		state: state,
	}
	exec.globals = newEnv(state, nil)
	exec.env = exec.globals

	defineGlobals(exec.globals)

	return exec.interpret()
}

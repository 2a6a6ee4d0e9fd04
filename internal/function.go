package internal

import "fmt"

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}) interface{}
}

// returnValue unwinds the interpreter stack from a return statement
// up to the active call frame
type returnValue struct {
	value interface{}
}

type function struct {
	declaration *fnStmt
	closure     *env
}

func (f *function) arity() int {
	return len(f.declaration.params)
}

func (f *function) call(exec *exec, arguments []interface{}) (result interface{}) {
	// The frame encloses the environment captured at the definition
	// point, not the caller's
	env := newEnv(exec.state, f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if returnVal, isReturn := r.(returnValue); isReturn {
				result = returnVal.value
			} else {
				panic(r)
			}
		}
	}()

	exec.executeBlock(f.declaration.body, env)

	return nil
}

func (f *function) String() string {
	return fmt.Sprintf("fn <%s>", f.declaration.name.lexeme)
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) interface{}
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) interface{} {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("fn <%s>", n.name)
}

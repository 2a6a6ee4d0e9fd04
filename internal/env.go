package internal

// unbound marks a variable declared without initializer. Reading it
// before the first assignment is an error, assigning to it is not.
type unboundVar struct{}

var unbound unboundVar

type env struct {
	state *interpreterState

	enclosing *env
	values    map[string]interface{}
}

func newEnv(state *interpreterState, enclosing *env) *env {
	return &env{
		state:     state,
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		if _, isUnbound := value.(unboundVar); isUnbound {
			e.state.runtimeErr(errUndefinedVar, name)
		}
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	e.state.runtimeErr(errUndefinedVar, name)
	return nil
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	e.state.runtimeErr(errUndefinedVar, name)
}

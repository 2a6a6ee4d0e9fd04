package internal

import "time"

func defineGlobals(e *env) {
	defineClock(e)
}

func defineClock(e *env) {
	var clock nativeFn
	clock.name = "clock"
	clock.arityValue = 0
	clock.callFn = func(exec *exec, arguments []interface{}) interface{} {
		return float64(time.Now().Unix())
	}

	e.define("clock", &clock)
}

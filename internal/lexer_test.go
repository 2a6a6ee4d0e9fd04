package internal

import (
	"testing"
)

func scanSource(source string) *interpreterState {
	state := &interpreterState{
		source: source,
		errors: make([]parseError, 0),
		logger: &testPrinter{},
	}
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	return state
}

func checkTokens(t *testing.T, source string, expected ...tokenType) {
	t.Helper()
	state := scanSource(source)
	if !state.Valid() {
		t.Fatalf("scan of %q failed: %v", source, state.errors)
	}
	expected = append(expected, tkEOF)
	if len(state.tokens) != len(expected) {
		t.Fatalf("scan of %q produced %d tokens, want %d", source, len(state.tokens), len(expected))
	}
	for i, tk := range state.tokens {
		if tk.token != expected[i] {
			t.Errorf("scan of %q: token %d is %d, want %d", source, i, tk.token, expected[i])
		}
	}
}

func TestScanOperators(t *testing.T) {
	checkTokens(t, "(){},.-+;/*",
		tkLeftParen, tkRightParen, tkLeftBrace, tkRightBrace, tkComma,
		tkDot, tkMinus, tkPlus, tkSemicolon, tkSlash, tkStar)
	checkTokens(t, "! != = == < <= > >=",
		tkBang, tkBangEqual, tkEqual, tkEqualEqual,
		tkLess, tkLessEqual, tkGreater, tkGreaterEqual)
}

func TestScanKeywords(t *testing.T) {
	checkTokens(t, "and class else false for fun if nil or print return super this true var while",
		tkAnd, tkClass, tkElse, tkFalse, tkFor, tkFun, tkIf, tkNil,
		tkOr, tkPrint, tkReturn, tkSuper, tkThis, tkTrue, tkVar, tkWhile)

	// Unmatched identifiers stay identifiers
	checkTokens(t, "android classic prints", tkIdentifier, tkIdentifier, tkIdentifier)
}

func TestScanLiterals(t *testing.T) {
	state := scanSource(`var answer = 42.5; print "hi";`)
	if !state.Valid() {
		t.Fatalf("scan failed: %v", state.errors)
	}

	number := state.tokens[3]
	if number.token != tkNumber || number.literal != 42.5 {
		t.Errorf("number token = %+v, want literal 42.5", number)
	}
	if number.lexeme != "42.5" {
		t.Errorf("number lexeme = %q, want %q", number.lexeme, "42.5")
	}

	str := state.tokens[6]
	if str.token != tkString || str.literal != "hi" {
		t.Errorf("string token = %+v, want literal \"hi\"", str)
	}
	if str.lexeme != `"hi"` {
		t.Errorf("string lexeme = %q, want %q", str.lexeme, `"hi"`)
	}
}

func TestScanIntegerHasNoTrailingDot(t *testing.T) {
	// '1.' scans as NUMBER then DOT, the fraction needs a digit
	checkTokens(t, "1.;", tkNumber, tkDot, tkSemicolon)
	checkTokens(t, "1.5;", tkNumber, tkSemicolon)
}

func TestScanComments(t *testing.T) {
	checkTokens(t, "1 // comment to end of line\n+ 2", tkNumber, tkPlus, tkNumber)
	checkTokens(t, "1 / 2", tkNumber, tkSlash, tkNumber)
}

func TestScanLineCount(t *testing.T) {
	state := scanSource("1;\n2;\n\n3;")
	if !state.Valid() {
		t.Fatalf("scan failed: %v", state.errors)
	}
	lines := []int{1, 1, 2, 2, 4, 4, 4}
	for i, want := range lines {
		if state.tokens[i].line != want {
			t.Errorf("token %d on line %d, want %d", i, state.tokens[i].line, want)
		}
	}

	// Newlines inside a string literal still advance the counter
	state = scanSource("\"a\nb\"\nx")
	if !state.Valid() {
		t.Fatalf("scan failed: %v", state.errors)
	}
	if x := state.tokens[1]; x.line != 3 {
		t.Errorf("token after multiline string on line %d, want 3", x.line)
	}
}

func TestScanErrors(t *testing.T) {
	state := scanSource(`"never closed`)
	if state.Valid() {
		t.Fatal("unterminated string should be a scan error")
	}
	if state.errors[0].err != errUnclosedString {
		t.Errorf("got %v, want %v", state.errors[0].err, errUnclosedString)
	}

	state = scanSource("var a = 1 @ 2;")
	if state.Valid() {
		t.Fatal("illegal character should be a scan error")
	}
	if state.errors[0].err != errIllegalChar {
		t.Errorf("got %v, want %v", state.errors[0].err, errIllegalChar)
	}
}

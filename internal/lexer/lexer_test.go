package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSingleCharacterTokens(t *testing.T) {
	input := `(){},.-+;*`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TokenLeftParen, "("},
		{TokenRightParen, ")"},
		{TokenLeftBrace, "{"},
		{TokenRightBrace, "}"},
		{TokenComma, ","},
		{TokenDot, "."},
		{TokenMinus, "-"},
		{TokenPlus, "+"},
		{TokenSemicolon, ";"},
		{TokenStar, "*"},
		{TokenEOF, ""},
	}

	checkTokens(t, input, tests)
}

func TestOperatorFusion(t *testing.T) {
	input := `! != = == < <= > >= ===`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TokenBang, "!"},
		{TokenBangEqual, "!="},
		{TokenEqual, "="},
		{TokenEqualEqual, "=="},
		{TokenLess, "<"},
		{TokenLessEqual, "<="},
		{TokenGreater, ">"},
		{TokenGreaterEqual, ">="},
		{TokenEqualEqual, "=="},
		{TokenEqual, "="},
		{TokenEOF, ""},
	}

	checkTokens(t, input, tests)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := `and class else false fun for if nil or print return super this true var while andy foo_bar x1`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TokenAnd, "and"},
		{TokenClass, "class"},
		{TokenElse, "else"},
		{TokenFalse, "false"},
		{TokenFun, "fun"},
		{TokenFor, "for"},
		{TokenIf, "if"},
		{TokenNil, "nil"},
		{TokenOr, "or"},
		{TokenPrint, "print"},
		{TokenReturn, "return"},
		{TokenSuper, "super"},
		{TokenThis, "this"},
		{TokenTrue, "true"},
		{TokenVar, "var"},
		{TokenWhile, "while"},
		{TokenIdentifier, "andy"},
		{TokenIdentifier, "foo_bar"},
		{TokenIdentifier, "x1"},
		{TokenEOF, ""},
	}

	checkTokens(t, input, tests)
}

func TestIdentifierLiteralValue(t *testing.T) {
	results := New("count").ScanTokens()
	tokens := Tokens(results)

	if len(tokens) != 2 {
		t.Fatalf("token count wrong. expected=2, got=%d", len(tokens))
	}
	if tokens[0].Literal.Kind != LiteralString || tokens[0].Literal.Text != "count" {
		t.Errorf("identifier literal wrong. got=%+v", tokens[0].Literal)
	}
}

func TestNumbers(t *testing.T) {
	input := `123 45.67 10. .5`

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
		expectedValue  float64
	}{
		{TokenNumber, "123", 123},
		{TokenNumber, "45.67", 45.67},
		{TokenNumber, "10", 10},
		{TokenDot, ".", 0},
		{TokenDot, ".", 0},
		{TokenNumber, "5", 5},
		{TokenEOF, "", 0},
	}

	results := New(input).ScanTokens()
	if errs := Errors(results); len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}

	tokens := Tokens(results)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Type == TokenNumber && tok.Literal.Number != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%v, got=%v",
				i, tt.expectedValue, tok.Literal.Number)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	results := New(`"hello world"`).ScanTokens()
	if errs := Errors(results); len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}

	tokens := Tokens(results)
	if tokens[0].Type != TokenString {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", TokenString, tokens[0].Type)
	}
	if tokens[0].Literal.Text != "hello world" {
		t.Errorf("string value wrong. expected=%q, got=%q", "hello world", tokens[0].Literal.Text)
	}
	if tokens[0].Lexeme != `"hello world"` {
		t.Errorf("lexeme wrong. expected=%q, got=%q", `"hello world"`, tokens[0].Lexeme)
	}
}

func TestMultiLineString(t *testing.T) {
	input := "\"a\nb\" 1"

	results := New(input).ScanTokens()
	if errs := Errors(results); len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}

	tokens := Tokens(results)
	if tokens[0].Type != TokenString || tokens[0].Literal.Text != "a\nb" {
		t.Fatalf("string token wrong. got=%s", tokens[0])
	}
	if tokens[0].Line() != 1 {
		t.Errorf("string start line wrong. expected=1, got=%d", tokens[0].Line())
	}
	if tokens[0].Span.End.Line != 2 {
		t.Errorf("string end line wrong. expected=2, got=%d", tokens[0].Span.End.Line)
	}
	if tokens[1].Type != TokenNumber || tokens[1].Line() != 2 {
		t.Errorf("token after string wrong. got=%s", tokens[1])
	}
}

func TestUnterminatedString(t *testing.T) {
	results := New(`"abc`).ScanTokens()

	errs := Errors(results)
	if len(errs) != 1 {
		t.Fatalf("error count wrong. expected=1, got=%d", len(errs))
	}
	if errs[0].Message != "Unterminated string" {
		t.Errorf("message wrong. got=%q", errs[0].Message)
	}

	// no string token for the malformed span, only EOF
	tokens := Tokens(results)
	if len(tokens) != 1 || tokens[0].Type != TokenEOF {
		t.Errorf("tokens wrong. got=%v", tokens)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	results := New("@ 1").ScanTokens()

	errs := Errors(results)
	if len(errs) != 1 {
		t.Fatalf("error count wrong. expected=1, got=%d", len(errs))
	}
	if errs[0].Line != 1 || errs[0].Column != 1 {
		t.Errorf("error position wrong. got=%d:%d", errs[0].Line, errs[0].Column)
	}
	if errs[0].Message != "Unexpected character '@'" {
		t.Errorf("message wrong. got=%q", errs[0].Message)
	}

	// scanning resumes with the next token
	tokens := Tokens(results)
	if len(tokens) != 2 || tokens[0].Type != TokenNumber || tokens[1].Type != TokenEOF {
		t.Errorf("tokens after error wrong. got=%v", tokens)
	}
}

func TestLexicalErrorFormat(t *testing.T) {
	err := &LexicalError{Line: 3, Column: 7, Message: "Unexpected character '@'"}
	want := "[line 3:7] Error: Unexpected character '@'"
	if err.Error() != want {
		t.Errorf("error format wrong. expected=%q, got=%q", want, err.Error())
	}
}

func TestComments(t *testing.T) {
	input := "1 // first\n2 // second"

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
		expectedLine   int
	}{
		{TokenNumber, "1", 1},
		{TokenNumber, "2", 2},
		{TokenEOF, "", 2},
	}

	results := New(input).ScanTokens()
	if errs := Errors(results); len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}

	tokens := Tokens(results)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}
	for i, tt := range tests {
		if tokens[i].Type != tt.expectedType || tokens[i].Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - token wrong. got=%s", i, tokens[i])
		}
		if tokens[i].Line() != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong. expected=%d, got=%d",
				i, tt.expectedLine, tokens[i].Line())
		}
	}
}

func TestCommentOnlyInput(t *testing.T) {
	// a comment at end of input terminates without a newline
	results := New("// nothing else").ScanTokens()
	tokens := Tokens(results)
	if len(tokens) != 1 || tokens[0].Type != TokenEOF {
		t.Errorf("tokens wrong. got=%v", tokens)
	}
}

func TestDivisionIsNotAComment(t *testing.T) {
	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{TokenNumber, "8"},
		{TokenSlash, "/"},
		{TokenNumber, "2"},
		{TokenEOF, ""},
	}

	checkTokens(t, "8 / 2", tests)
}

func TestLineTracking(t *testing.T) {
	input := "1\n2\n"

	results := New(input).ScanTokens()
	tokens := Tokens(results)

	if tokens[0].Line() != 1 {
		t.Errorf("first token line wrong. got=%d", tokens[0].Line())
	}
	if tokens[1].Line() != 2 {
		t.Errorf("second token line wrong. got=%d", tokens[1].Line())
	}
	if eof := tokens[len(tokens)-1]; eof.Type != TokenEOF || eof.Line() != 3 {
		t.Errorf("EOF token wrong. got=%s", eof)
	}
}

func TestEmptyInput(t *testing.T) {
	results := New("").ScanTokens()
	if len(results) != 1 {
		t.Fatalf("result count wrong. expected=1, got=%d", len(results))
	}
	tok := results[0].Token
	if tok.Type != TokenEOF || tok.Lexeme != "" || tok.Line() != 1 {
		t.Errorf("EOF token wrong. got=%s", tok)
	}
}

func TestScanDeterminism(t *testing.T) {
	input := "123 + (45.6 * 7) // trailing\n\"s\" != x @"

	first := New(input).ScanTokens()
	second := New(input).ScanTokens()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("scan is not deterministic (-first +second):\n%s", diff)
	}
}

func TestTokenSequenceExample(t *testing.T) {
	input := "123 + 45 * 67 + 4"

	expected := []TokenType{
		TokenNumber, TokenPlus, TokenNumber, TokenStar,
		TokenNumber, TokenPlus, TokenNumber, TokenEOF,
	}

	tokens := Tokens(New(input).ScanTokens())
	if len(tokens) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Fatalf("tokens[%d] - tokentype wrong. expected=%q, got=%q",
				i, want, tokens[i].Type)
		}
	}
}

func checkTokens(t *testing.T, input string, tests []struct {
	expectedType   TokenType
	expectedLexeme string
}) {
	t.Helper()

	results := New(input).ScanTokens()
	if errs := Errors(results); len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}

	tokens := Tokens(results)
	if len(tokens) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(tokens))
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

/*
File    : chai/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chailang/chai/token"
)

func kindsOf(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func TestNextToken_Operators(t *testing.T) {
	input := `=+(){},;!-/*<>`
	expected := []token.Kind{
		token.ASSIGN, token.PLUS, token.LPAREN, token.RPAREN, token.LBRACE,
		token.RBRACE, token.COMMA, token.SEMICOLON, token.BANG, token.MINUS,
		token.SLASH, token.ASTERISK, token.LESS_THAN, token.GREATER_THAN, token.EOF,
	}
	l := New(input)
	assert.Equal(t, expected, kindsOf(l.Tokens()))
}

func TestNextToken_TwoCharacterOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Kind
	}{
		{"==", []token.Kind{token.EQUAL, token.EOF}},
		{"!=", []token.Kind{token.NOT_EQUAL, token.EOF}},
		{"=!", []token.Kind{token.ASSIGN, token.BANG, token.EOF}},
	}
	for _, tt := range tests {
		l := New(tt.input)
		assert.Equal(t, tt.expected, kindsOf(l.Tokens()))
	}
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	input := `let fn true false if else return while foobar_baz _x IF`
	expected := []token.Token{
		token.New(token.LET, "let", 1, 1),
		token.New(token.FUNCTION, "fn", 1, 5),
		token.New(token.TRUE, "true", 1, 8),
		token.New(token.FALSE, "false", 1, 13),
		token.New(token.IF, "if", 1, 19),
		token.New(token.ELSE, "else", 1, 22),
		token.New(token.RETURN, "return", 1, 27),
		token.New(token.WHILE, "while", 1, 34),
		token.New(token.IDENT, "foobar_baz", 1, 40),
		token.New(token.IDENT, "_x", 1, 51),
		token.New(token.IDENT, "IF", 1, 54),
		token.New(token.EOF, "", 1, 56),
	}
	l := New(input)
	assert.Equal(t, expected, l.Tokens())
}

func TestNextToken_IntegersAndNoDigitContinuation(t *testing.T) {
	// identifiers don't absorb trailing digits: "a1" lexes as IDENT "a"
	// followed by INT "1", per the language's deliberate simplification.
	l := New("123 a1")
	toks := l.Tokens()
	assert.Equal(t, []token.Kind{token.INT, token.IDENT, token.INT, token.EOF}, kindsOf(toks))
	assert.Equal(t, "123", toks[0].Literal)
	assert.Equal(t, "a", toks[1].Literal)
	assert.Equal(t, "1", toks[2].Literal)
}

func TestNextToken_Strings(t *testing.T) {
	l := New(`"hello world" ""`)
	toks := l.Tokens()
	assert.Equal(t, []token.Kind{token.STRING, token.STRING, token.EOF}, kindsOf(toks))
	assert.Equal(t, "hello world", toks[0].Literal)
	assert.Equal(t, "", toks[1].Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	toks := l.Tokens()
	assert.Equal(t, []token.Kind{token.STRING, token.EOF}, kindsOf(toks))
	assert.Equal(t, "unterminated", toks[0].Literal)
}

func TestNextToken_Illegal(t *testing.T) {
	l := New("@")
	toks := l.Tokens()
	assert.Equal(t, []token.Kind{token.ILLEGAL, token.EOF}, kindsOf(toks))
	assert.Equal(t, "@", toks[0].Literal)
}

func TestNextToken_LinesAndColumns(t *testing.T) {
	l := New("let a = 1;\nlet b = 2;")
	toks := l.Tokens()
	// first token on line 1
	assert.Equal(t, 1, toks[0].Line)
	// "let" on the second line starts a fresh column count
	var secondLet token.Token
	for _, tok := range toks {
		if tok.Line == 2 && tok.Kind == token.LET {
			secondLet = tok
		}
	}
	assert.Equal(t, 1, secondLet.Column)
}

func TestNextToken_ArraysAndBrackets(t *testing.T) {
	l := New("[1, 2][0]")
	toks := l.Tokens()
	assert.Equal(t, []token.Kind{
		token.LBRACKET, token.INT, token.COMMA, token.INT, token.RBRACKET,
		token.LBRACKET, token.INT, token.RBRACKET, token.EOF,
	}, kindsOf(toks))
}

func TestNextToken_AlwaysEndsInSingleEOF(t *testing.T) {
	inputs := []string{"", "   ", "let x = 5;", "@@@", `"unterminated`}
	for _, in := range inputs {
		toks := New(in).Tokens()
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
		for _, tok := range toks[:len(toks)-1] {
			assert.NotEqual(t, token.EOF, tok.Kind)
		}
	}
}

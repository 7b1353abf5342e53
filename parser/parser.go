/*
File    : chai/parser/parser.go
Package : parser
*/

// Package parser implements a Pratt parser (top-down operator
// precedence parsing) that turns a token.Token stream into an
// ast.Program. It never panics on malformed input: every failure
// appends a message to Errors and the parser keeps going, so a single
// Parse call can report more than one problem.
package parser

import (
	"fmt"

	"github.com/chailang/chai/ast"
	"github.com/chailang/chai/lexer"
	"github.com/chailang/chai/token"
)

// Operator precedence levels, lowest to highest. Higher binds
// tighter. Assign is deliberately just above Lowest and parsed with
// right associativity (`a = b = 1` parses as `a = (b = 1)`), and Index
// binds tightest of all so `arr[0]` attaches before any surrounding
// binary operator.
const (
	Lowest int = iota
	Assign
	Equals
	LessGreater
	Sum
	Product
	Prefix
	Call
	Index
)

var precedences = map[token.Kind]int{
	token.ASSIGN:       Assign,
	token.EQUAL:        Equals,
	token.NOT_EQUAL:    Equals,
	token.LESS_THAN:    LessGreater,
	token.GREATER_THAN: LessGreater,
	token.PLUS:         Sum,
	token.MINUS:        Sum,
	token.SLASH:        Product,
	token.ASTERISK:     Product,
	token.LPAREN:       Call,
	token.LBRACKET:     Index,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds two-token lookahead over a lexer, the prefix/infix
// dispatch tables keyed by token kind, and the accumulated error list.
type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn

	Errors []string
}

// New builds a Parser over src, registers every prefix/infix parse
// function, and primes the two-token lookahead.
func New(src string) *Parser {
	p := &Parser{
		lex:    lexer.New(src),
		Errors: []string{},
	}

	p.prefixFns = make(map[token.Kind]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.WHILE, p.parseWhileExpression)
	p.registerPrefix(token.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(token.LBRACKET, p.parseArrayLiteral)

	p.infixFns = make(map[token.Kind]infixParseFn)
	for _, kind := range []token.Kind{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQUAL, token.NOT_EQUAL, token.LESS_THAN, token.GREATER_THAN,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(token.ASSIGN, p.parseAssignExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	// prime curToken/peekToken
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(kind token.Kind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Kind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peekToken.Kind == kind }

// expectPeek checks that the next token is kind and, if so, advances
// onto it. Otherwise it records an error and leaves the parser where
// it was.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(expected token.Kind) {
	msg := fmt.Sprintf("Line:%d Col:%d expected next token to be %s, got %s instead",
		p.peekToken.Line, p.peekToken.Column, expected, p.peekToken.Kind)
	p.Errors = append(p.Errors, msg)
}

func (p *Parser) noPrefixParseFnError(kind token.Kind) {
	msg := fmt.Sprintf("Line:%d Col:%d no prefix parse function for %s found",
		p.curToken.Line, p.curToken.Column, kind)
	p.Errors = append(p.Errors, msg)
}

// HasErrors reports whether Parse collected any error messages.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns every error message collected so far.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Kind]; ok {
		return prec
	}
	return Lowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return Lowest
}

// Parse builds the full ast.Program by repeatedly parsing statements
// until EOF.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

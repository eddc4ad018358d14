// Package parser implements a Pratt parser that turns a token stream
// into the AST the reducer operates on, using a prefix/infix
// parse-function map keyed by token type and precedence climbing.
package parser

import (
	"fmt"

	"github.com/mpgarate/boxx/internal/ast"
	"github.com/mpgarate/boxx/internal/lexer"
	"github.com/mpgarate/boxx/internal/token"
)

// Precedence levels, lowest to highest. Sequencing binds loosest so a
// whole program is one expression; call binds tightest.
const (
	_ int = iota
	LOWEST
	SEQ      // ;
	ASSIGN   // =
	TERNARY  // ?:
	OR       // ||
	AND      // &&
	EQUALS   // == !=
	COMPARE  // < > <= >=
	SUM      // + -
	PRODUCT  // * / %
	PREFIX   // ! -x
	CALL     // f(args)
)

var precedences = map[token.Type]int{
	token.SEMICOLON: SEQ,
	token.ASSIGN:    ASSIGN,
	token.QUESTION:  TERNARY,
	token.OR:        OR,
	token.AND:       AND,
	token.EQ:        EQUALS,
	token.NEQ:       EQUALS,
	token.LT:        COMPARE,
	token.GT:        COMPARE,
	token.LEQ:       COMPARE,
	token.GEQ:       COMPARE,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.STAR:      PRODUCT,
	token.SLASH:     PRODUCT,
	token.PERCENT:   PRODUCT,
	token.LPAREN:    CALL,
}

type prefixParseFn func() (ast.Expr, error)
type infixParseFn func(left ast.Expr) (ast.Expr, error)

// Error reports a parse failure with its source position.
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Parser consumes a lexer.Lexer's token stream one token of lookahead
// at a time (curTok, peekTok).
type Parser struct {
	l *lexer.Lexer

	curTok  token.Token
	peekTok token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New constructs a Parser over l and primes curTok/peekTok.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.INT:    p.parseInt,
		token.TRUE:   p.parseBool,
		token.FALSE:  p.parseBool,
		token.IDENT:  p.parseIdent,
		token.NOT:    p.parseUnary,
		token.MINUS:  p.parseUnary,
		token.LPAREN: p.parseGrouped,
		token.IF:     p.parseIf,
		token.LET:    p.parseDecl,
		token.VAR:    p.parseDecl,
		token.FN:     p.parseFn,
		token.WHILE:  p.parseWhile,
		token.PRINT:  p.parsePrint,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.SEMICOLON: p.parseSeq,
		token.ASSIGN:    p.parseAssign,
		token.QUESTION:  p.parseTernaryOp,
		token.OR:        p.parseBinary,
		token.AND:       p.parseBinary,
		token.EQ:        p.parseBinary,
		token.NEQ:       p.parseBinary,
		token.LT:        p.parseBinary,
		token.GT:        p.parseBinary,
		token.LEQ:       p.parseBinary,
		token.GEQ:       p.parseBinary,
		token.PLUS:      p.parseBinary,
		token.MINUS:     p.parseBinary,
		token.STAR:      p.parseBinary,
		token.SLASH:     p.parseBinary,
		token.PERCENT:   p.parseBinary,
		token.LPAREN:    p.parseCall,
	}

	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.curTok = p.peekTok
	p.peekTok = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.curTok.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekTok.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekTok.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) expect(t token.Type) error {
	if !p.curIs(t) {
		return &Error{
			Message: fmt.Sprintf("expected %s, got %s %q", t, p.curTok.Type, p.curTok.Literal),
			Pos:     p.curTok.Pos,
		}
	}
	p.next()
	return nil
}

// Parse parses the entire token stream as a single expression.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if !p.curIs(token.EOF) {
		return nil, &Error{
			Message: fmt.Sprintf("unexpected trailing token %s %q", p.curTok.Type, p.curTok.Literal),
			Pos:     p.curTok.Pos,
		}
	}
	return expr, nil
}

func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	prefix, ok := p.prefixFns[p.curTok.Type]
	if !ok {
		return nil, &Error{
			Message: fmt.Sprintf("no prefix parse function for %s %q", p.curTok.Type, p.curTok.Literal),
			Pos:     p.curTok.Pos,
		}
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.EOF) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekTok.Type]
		if !ok {
			return left, nil
		}
		p.next()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseInt() (ast.Expr, error) {
	lit := p.curTok.Literal
	var n int64
	for _, r := range lit {
		n = n*10 + int64(r-'0')
	}
	p.next()
	return ast.Val(ast.IntValue(n)), nil
}

func (p *Parser) parseBool() (ast.Expr, error) {
	v := p.curIs(token.TRUE)
	p.next()
	return ast.Val(ast.BoolValue(v)), nil
}

func (p *Parser) parseIdent() (ast.Expr, error) {
	name := p.curTok.Literal
	p.next()
	return &ast.Var{Name: name}, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	op := ast.Not
	if p.curIs(token.MINUS) {
		op = ast.Neg
	}
	p.next()
	operand, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.UopExpr{Op: op, X: operand}, nil
}

func (p *Parser) parseGrouped() (ast.Expr, error) {
	p.next()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIf parses the `if (c) { t } else { f }` keyword form, lowering
// it directly to a TernaryExpr. A missing else defaults to Undefined.
func (p *Parser) parseIf() (ast.Expr, error) {
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var elseExpr ast.Expr = ast.Val(ast.UndefinedValue{})
	if p.curIs(token.ELSE) {
		p.next()
		elseExpr, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: elseExpr}, nil
}

// parseBlock parses `{ expr }`, where an empty block `{}` evaluates to
// Undefined.
func (p *Parser) parseBlock() (ast.Expr, error) {
	if err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	if p.curIs(token.RBRACE) {
		p.next()
		return ast.Val(ast.UndefinedValue{}), nil
	}
	body, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return body, nil
}

// parseRest parses the `; BODY` tail shared by let/var/fn-named/while.
// A trailing `;` with nothing after it (EOF) defaults BODY to
// Undefined.
func (p *Parser) parseRest() (ast.Expr, error) {
	if err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	if p.curIs(token.EOF) {
		return ast.Val(ast.UndefinedValue{}), nil
	}
	return p.parseExpression(LOWEST)
}

// parseDecl parses `let NAME = EXPR ; BODY` / `var NAME = EXPR ; BODY`.
func (p *Parser) parseDecl() (ast.Expr, error) {
	kind := ast.DVar
	if p.curIs(token.LET) {
		kind = ast.DConst
	}
	p.next()
	if !p.curIs(token.IDENT) {
		return nil, &Error{Message: "expected identifier after let/var", Pos: p.curTok.Pos}
	}
	target := &ast.Var{Name: p.curTok.Literal}
	p.next()
	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.parseExpression(ASSIGN)
	if err != nil {
		return nil, err
	}
	body, err := p.parseRest()
	if err != nil {
		return nil, err
	}
	return &ast.DeclExpr{Kind: kind, Target: target, Init: init, Body: body}, nil
}

func (p *Parser) parseParams() ([]ast.Expr, error) {
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Expr
	for !p.curIs(token.RPAREN) {
		if !p.curIs(token.IDENT) {
			return nil, &Error{Message: "expected parameter name", Pos: p.curTok.Pos}
		}
		params = append(params, &ast.Var{Name: p.curTok.Literal})
		p.next()
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	p.next()
	return params, nil
}

// parseFn parses both `fn NAME(params) { body } ; rest` (a named,
// self-recursive binding) and `fn(params) { body }` (an anonymous
// function value).
func (p *Parser) parseFn() (ast.Expr, error) {
	p.next()
	if p.curIs(token.IDENT) {
		name := &ast.Var{Name: p.curTok.Literal}
		p.next()
		params, err := p.parseParams()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseRest()
		if err != nil {
			return nil, err
		}
		fn := &ast.FuncValue{Name: name, Params: params, Body: body}
		return &ast.DeclExpr{Kind: ast.DConst, Target: name, Init: ast.Val(fn), Body: rest}, nil
	}

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.Val(&ast.FuncValue{Name: nil, Params: params, Body: body}), nil
}

// parseWhile parses `while (c) { b } ; rest`.
func (p *Parser) parseWhile() (ast.Expr, error) {
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	after, err := p.parseRest()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body, after), nil
}

// parsePrint parses `print(e)`.
func (p *Parser) parsePrint() (ast.Expr, error) {
	p.next()
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	x, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.PrintExpr{X: x}, nil
}

func (p *Parser) parseSeq(left ast.Expr) (ast.Expr, error) {
	// Right-associative: a trailing `;` at end of input is a no-op,
	// matching the bare-declaration-statement scenario.
	if p.curIs(token.EOF) {
		return &ast.BopExpr{Op: ast.Seq, L: left, R: ast.Val(ast.UndefinedValue{})}, nil
	}
	right, err := p.parseExpression(SEQ - 1)
	if err != nil {
		return nil, err
	}
	return &ast.BopExpr{Op: ast.Seq, L: left, R: right}, nil
}

func (p *Parser) parseAssign(left ast.Expr) (ast.Expr, error) {
	right, err := p.parseExpression(ASSIGN - 1)
	if err != nil {
		return nil, err
	}
	return &ast.BopExpr{Op: ast.Assign, L: left, R: right}, nil
}

func (p *Parser) parseTernaryOp(cond ast.Expr) (ast.Expr, error) {
	then, err := p.parseExpression(TERNARY)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpression(TERNARY - 1)
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpr{Cond: cond, Then: then, Else: elseExpr}, nil
}

var binOps = map[token.Type]ast.BinOp{
	token.OR: ast.Or, token.AND: ast.And,
	token.EQ: ast.Eq, token.NEQ: ast.Ne,
	token.LT: ast.Lt, token.GT: ast.Gt, token.LEQ: ast.Leq, token.GEQ: ast.Geq,
	token.PLUS: ast.Plus, token.MINUS: ast.Minus,
	token.STAR: ast.Times, token.SLASH: ast.Div, token.PERCENT: ast.Mod,
}

func (p *Parser) parseBinary(left ast.Expr) (ast.Expr, error) {
	opTok := p.curTok
	op := binOps[opTok.Type]
	precedence := precedences[opTok.Type]
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BopExpr{Op: op, L: left, R: right}, nil
}

func (p *Parser) parseCall(callee ast.Expr) (ast.Expr, error) {
	p.next()
	var args []ast.Expr
	for !p.curIs(token.RPAREN) {
		arg, err := p.parseExpression(ASSIGN)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(token.COMMA) {
			p.next()
		}
	}
	p.next()
	return &ast.FnCallExpr{Callee: callee, Args: args}, nil
}

// Parse is a convenience wrapper that lexes source and parses it in
// one call.
func Parse(source string) (ast.Expr, error) {
	l := lexer.New(source)
	p := New(l)
	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if errs := l.Errors(); len(errs) > 0 {
		return nil, &Error{Message: errs[0].Message, Pos: errs[0].Pos}
	}
	return expr, nil
}

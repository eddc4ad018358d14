package lexer

import (
	"testing"

	"github.com/mpgarate/boxx/internal/token"
)

func collect(input string) []token.Token {
	l := New(input)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Type == token.EOF {
			return out
		}
	}
}

func TestLexerOperatorsAndKeywords(t *testing.T) {
	toks := collect(`let x = 3; var y = x + 1; fn f(a) { a }; while (y < 10) { y = y + 1 } print(y)`)
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON,
		token.VAR, token.IDENT, token.ASSIGN, token.IDENT, token.PLUS, token.INT, token.SEMICOLON,
		token.FN, token.IDENT, token.LPAREN, token.IDENT, token.RPAREN, token.LBRACE, token.IDENT, token.RBRACE, token.SEMICOLON,
		token.WHILE, token.LPAREN, token.IDENT, token.LT, token.INT, token.RPAREN, token.LBRACE,
		token.IDENT, token.ASSIGN, token.IDENT, token.PLUS, token.INT, token.RBRACE,
		token.PRINT, token.LPAREN, token.IDENT, token.RPAREN,
		token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %v want %v (%q)", i, tok.Type, want[i], tok.Literal)
		}
	}
}

func TestLexerTwoCharOperators(t *testing.T) {
	toks := collect("a == b != c <= d >= e && f || !g")
	kinds := []token.Type{
		token.IDENT, token.EQ, token.IDENT, token.NEQ, token.IDENT, token.LEQ,
		token.IDENT, token.GEQ, token.IDENT, token.AND, token.IDENT, token.OR,
		token.NOT, token.IDENT, token.EOF,
	}
	for i, want := range kinds {
		if toks[i].Type != want {
			t.Errorf("token %d: got %v want %v", i, toks[i].Type, want)
		}
	}
}

func TestLexerLineComment(t *testing.T) {
	toks := collect("1 + 2 // trailing comment\n+ 3")
	want := []token.Type{token.INT, token.PLUS, token.INT, token.PLUS, token.INT, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens want %d", len(toks), len(want))
	}
	for i := range want {
		if toks[i].Type != want[i] {
			t.Errorf("token %d: got %v want %v", i, toks[i].Type, want[i])
		}
	}
}

func TestLexerIllegalCharacter(t *testing.T) {
	l := New("1 @ 2")
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestLexerBOMStripped(t *testing.T) {
	toks := collect("\xEF\xBB\xBF1 + 1")
	if toks[0].Type != token.INT || toks[0].Literal != "1" {
		t.Fatalf("expected leading BOM stripped, got %+v", toks[0])
	}
}

func TestLexerIdentifierPosition(t *testing.T) {
	toks := collect("var xyz")
	if toks[1].Pos.Column != 5 {
		t.Errorf("got column %d want 5", toks[1].Pos.Column)
	}
}

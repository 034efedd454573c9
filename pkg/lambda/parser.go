package lambda

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// SyntaxError is the only error the pipeline produces, raised by the
// parser alone; the lexer and every tree transformation are total. It
// carries a message and nothing else, since the lexer discards positions.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }

// factorStart lists the token types that can begin a factor.
var factorStart = []TokenType{TokenIdent, TokenLambda, TokenLParen}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// factor := Ident | λ Ident . application | ( application )
func (p *parser) parseFactor() (Term, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &SyntaxError{Msg: "Unexpected end of input"}
	}
	switch tok.Type {
	case TokenIdent:
		return Var{Name: tok.Name}, nil
	case TokenLambda:
		param, ok := p.next()
		if !ok || param.Type != TokenIdent {
			return nil, &SyntaxError{Msg: "Expected identifier after lambda"}
		}
		if dot, ok := p.next(); !ok || dot.Type != TokenDot {
			return nil, &SyntaxError{Msg: "Expected '.' after lambda parameter"}
		}
		body, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		return Abs{Param: param.Name, Body: body}, nil
	case TokenLParen:
		expr, err := p.parseApplication()
		if err != nil {
			return nil, err
		}
		if closing, ok := p.next(); !ok || closing.Type != TokenRParen {
			return nil, &SyntaxError{Msg: "Expected ')'"}
		}
		return expr, nil
	}
	return nil, &SyntaxError{Msg: fmt.Sprintf("Unexpected token: %q", tok)}
}

// application := factor factor*, folded left. An abstraction body is
// parsed with this production, so `λx. a b` reads as `λx. (a b)`.
func (p *parser) parseApplication() (Term, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tok, ok := p.peek()
		if !ok || !slices.Contains(factorStart, tok.Type) {
			return expr, nil
		}
		arg, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = App{Fn: expr, Arg: arg}
	}
}

// Parse builds a Term from tokens, failing with a *SyntaxError at the
// first malformed production. Tokens past the end of the top-level
// application are ignored.
func Parse(tokens []Token) (Term, error) {
	p := &parser{tokens: tokens}
	return p.parseApplication()
}

// ParseString tokenizes and parses input in one call.
func ParseString(input string) (Term, error) {
	return Parse(Tokenize(input))
}

package lambda

import "unicode"

// TokenType identifies the kind of a token.
type TokenType int

const (
	TokenLambda TokenType = iota
	TokenDot
	TokenLParen
	TokenRParen
	TokenIdent
)

// Token carries no position information; diagnostics report only a
// message, never a location.
type Token struct {
	Type TokenType
	Name string // identifier text, empty for the fixed tokens
}

func (t Token) String() string {
	switch t.Type {
	case TokenLambda:
		return "λ"
	case TokenDot:
		return "."
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return t.Name
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize scans input left to right. Whitespace is skipped, `\` and `λ`
// both scan as a lambda marker, and a maximal run of alphanumerics and
// underscores forms one identifier. Any other rune is skipped without a
// token or an error: malformed input is the parser's problem, never the
// lexer's.
func Tokenize(input string) []Token {
	var tokens []Token
	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, Token{Type: TokenLParen})
			i++
		case r == ')':
			tokens = append(tokens, Token{Type: TokenRParen})
			i++
		case r == '.':
			tokens = append(tokens, Token{Type: TokenDot})
			i++
		case r == '\\' || r == 'λ':
			tokens = append(tokens, Token{Type: TokenLambda})
			i++
		case isIdentRune(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			tokens = append(tokens, Token{Type: TokenIdent, Name: string(runes[start:i])})
		default:
			i++
		}
	}
	return tokens
}

package parser

import "github.com/reusee/exprs/nodes"

type Token struct {
	Kind TokenKind
	Text string
	Pos  nodes.Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenString
	TokenNumber
	TokenPlus
	TokenLParen
	TokenRParen
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdentifier:
		return "identifier"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "'+'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	}
	return "invalid token"
}

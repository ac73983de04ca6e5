package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reusee/exprs/nodes"
	"github.com/reusee/exprs/values"
)

var ErrSyntax = errors.New("syntax error")

type Parser struct {
	tokenizer *Tokenizer
}

// Parse parses an expression. Errors are nodes.PosError values wrapping ErrSyntax.
func Parse(name string, src string) (nodes.Node, error) {
	p := &Parser{
		tokenizer: NewTokenizer(nodes.NewSource(name, src)),
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	t, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}
	if t.Kind != TokenEOF {
		return nil, unexpected(t, "'+' or end of input")
	}
	return node, nil
}

func unexpected(t *Token, want string) error {
	var err error
	switch t.Kind {
	case TokenEOF:
		err = fmt.Errorf("%w: unexpected end of input, expecting %s", ErrSyntax, want)
	case TokenInvalid:
		err = fmt.Errorf("%w: invalid token %q", ErrSyntax, t.Text)
	default:
		err = fmt.Errorf("%w: unexpected %s %q, expecting %s", ErrSyntax, t.Kind, t.Text, want)
	}
	return nodes.WithPos(err, t.Pos)
}

func (p *Parser) parseExpr() (nodes.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		t, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if t.Kind != TokenPlus {
			break
		}
		p.tokenizer.Consume()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &nodes.Add{
			Left:  left,
			Right: right,
			At:    t.Pos,
		}
	}

	return left, nil
}

func (p *Parser) parseTerm() (nodes.Node, error) {
	t, err := p.tokenizer.Current()
	if err != nil {
		return nil, err
	}

	switch t.Kind {

	case TokenNumber:
		p.tokenizer.Consume()
		v, err := numberValue(t.Text)
		if err != nil {
			return nil, nodes.WithPos(err, t.Pos)
		}
		return &nodes.Literal{
			Value: v,
			At:    t.Pos,
		}, nil

	case TokenString:
		p.tokenizer.Consume()
		return &nodes.Literal{
			Value: values.String(t.Text),
			At:    t.Pos,
		}, nil

	case TokenIdentifier:
		p.tokenizer.Consume()
		switch t.Text {
		case "null":
			return &nodes.Literal{Value: values.Null{}, At: t.Pos}, nil
		case "true":
			return &nodes.Literal{Value: values.Bool(true), At: t.Pos}, nil
		case "false":
			return &nodes.Literal{Value: values.Bool(false), At: t.Pos}, nil
		}
		return &nodes.Var{
			Name: t.Text,
			At:   t.Pos,
		}, nil

	case TokenLParen:
		p.tokenizer.Consume()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if closing.Kind != TokenRParen {
			return nil, unexpected(closing, "')'")
		}
		p.tokenizer.Consume()
		return node, nil

	}

	return nil, unexpected(t, "a value")
}

// numberValue types integer literals as int32 when they fit, else int64.
// Literals with a fraction or exponent are float64.
func numberValue(text string) (values.Value, error) {
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %s: %w", ErrSyntax, text, err)
		}
		return values.Float64(f), nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %s: %w", ErrSyntax, text, err)
	}
	if i <= math.MaxInt32 {
		return values.Int32(i), nil
	}
	return values.Int64(i), nil
}

package parser

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/reusee/exprs/nodes"
)

type Tokenizer struct {
	source  *bufio.Reader
	current *Token

	src     *nodes.Source
	currPos nodes.Pos
	prevPos nodes.Pos
}

func NewTokenizer(src *nodes.Source) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(strings.NewReader(src.Content)),
		src:    src,
		currPos: nodes.Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == '#':
		t.skipComment()
		return t.parseNext()
	case r == '\'' || r == '"':
		return t.parseString(r, startPos)
	case r >= '0' && r <= '9':
		t.unreadRune()
		return t.parseNumber()
	case r == '+':
		return &Token{Kind: TokenPlus, Text: "+", Pos: startPos}, nil
	case r == '(':
		return &Token{Kind: TokenLParen, Text: "(", Pos: startPos}, nil
	case r == ')':
		return &Token{Kind: TokenRParen, Text: ")", Pos: startPos}, nil
	case unicode.IsLetter(r) || r == '_':
		t.unreadRune()
		return t.parseIdentifier()
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipComment() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r == '\n' {
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer

	digits := func() (int, error) {
		n := 0
		for {
			r, err := t.readRune()
			if err == io.EOF {
				return n, nil
			}
			if err != nil {
				return n, err
			}
			if r < '0' || r > '9' {
				t.unreadRune()
				return n, nil
			}
			buf.WriteRune(r)
			n++
		}
	}

	if _, err := digits(); err != nil {
		return nil, err
	}

	r, err := t.readRune()
	if err == nil && r == '.' {
		buf.WriteRune(r)
		if _, err := digits(); err != nil {
			return nil, err
		}
		r, err = t.readRune()
	}

	if err == nil && (r == 'e' || r == 'E') {
		buf.WriteRune(r)
		sign, err := t.readRune()
		if err == nil {
			if sign == '+' || sign == '-' {
				buf.WriteRune(sign)
			} else {
				t.unreadRune()
			}
		}
		n, err := digits()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return &Token{Kind: TokenInvalid, Text: buf.String(), Pos: startPos}, nil
		}
	} else if err == nil {
		t.unreadRune()
	} else if err != io.EOF {
		return nil, err
	}

	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseString(quote rune, startPos nodes.Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			// unmatched quote
			return &Token{Kind: TokenInvalid, Text: buf.String(), Pos: startPos}, nil
		}
		if err != nil {
			return nil, err
		}
		if r == quote {
			break
		}

		if r == '\\' {
			next, err := t.readRune()
			if err == io.EOF {
				// trailing backslash leaves the quote unmatched
				return &Token{Kind: TokenInvalid, Text: buf.String(), Pos: startPos}, nil
			}
			if err != nil {
				return nil, err
			}
			switch next {
			case 'n':
				buf.WriteRune('\n')
			case 'r':
				buf.WriteRune('\r')
			case 't':
				buf.WriteRune('\t')
			case '\\':
				buf.WriteRune('\\')
			case '"':
				buf.WriteRune('"')
			case '\'':
				buf.WriteRune('\'')
			default:
				buf.WriteRune('\\')
				buf.WriteRune(next)
			}
		} else {
			buf.WriteRune(r)
		}
	}
	return &Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

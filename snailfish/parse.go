package snailfish

import (
	"fmt"
	"strconv"
)

// Parse reads exactly one tree from s. Surrounding whitespace is ignored;
// whitespace inside a tree is not.
func Parse(s string) (*Tree, error) {
	p := &parser{src: s}
	p.skipSpace()
	t, err := p.tree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("unexpected %q after tree", p.src[p.pos])
	}

	return t, nil
}

// ParseAll reads every top-level tree in s, in order. Trees are separated
// by optional whitespace (typically one per line).
func ParseAll(s string) ([]*Tree, error) {
	p := &parser{src: s}
	var out []*Tree
	for p.skipSpace(); p.pos < len(p.src); p.skipSpace() {
		t, err := p.tree()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}

	return out, nil
}

// parser is a recursive-descent reader over the pair grammar.
type parser struct {
	src string
	pos int
}

func (p *parser) tree() (*Tree, error) {
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input, want number or '['")
	}
	c := p.src[p.pos]
	switch {
	case c == '[':
		p.pos++
		l, err := p.tree()
		if err != nil {
			return nil, err
		}
		if err = p.expect(','); err != nil {
			return nil, err
		}
		r, err := p.tree()
		if err != nil {
			return nil, err
		}
		if err = p.expect(']'); err != nil {
			return nil, err
		}

		return Pair(l, r), nil
	case isDigit(c):
		return p.number()
	default:
		return nil, p.errorf("unexpected %q, want number or '['", c)
	}
}

func (p *parser) number() (*Tree, error) {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 10, 64)
	if err != nil {
		return nil, &ParseError{Pos: start, Msg: "number out of range"}
	}

	return Num(n), nil
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) {
		return p.errorf("unexpected end of input, want %q", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("unexpected %q, want %q", p.src[p.pos], c)
	}
	p.pos++

	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// eof is the current rune once the cursor has moved past the input.
const eof rune = -1

// parser holds the cursor for a single evaluation. A new parser is made for
// each call to Eval, so nothing here outlives the call.
type parser struct {
	src []rune
	// pos is the offset of ch in src.
	pos int
	ch  rune
	// scale converts angle arguments to radians.
	scale float64
	// depth is the number of relations and factors being parsed.
	depth int
}

func newParser(s string, scale float64) *parser {
	p := &parser{src: []rune(s), pos: -1, scale: scale}
	p.advance()
	return p
}

// advance moves to the next rune, or to eof at the end of the input.
func (p *parser) advance() {
	p.pos++
	if p.pos < len(p.src) {
		p.ch = p.src[p.pos]
		return
	}
	p.pos = len(p.src)
	p.ch = eof
}

// skipSpace advances past any whitespace at the cursor.
func (p *parser) skipSpace() {
	for isSpace(p.ch) {
		p.advance()
	}
}

// isSpace reports whether r separates tokens. These are the ASCII controls
// \t through \r and \x1c through \x1f, plus the Unicode space, line, and
// paragraph separators other than the no-break spaces.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\x1c', '\x1d', '\x1e', '\x1f':
		return true
	case '\u00a0', '\u2007', '\u202f':
		return false
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// consume skips whitespace and then advances past r if it is the current
// rune. If it isn't, the cursor stays on the non-matching rune.
func (p *parser) consume(r rune) bool {
	p.skipSpace()
	if p.ch == r {
		p.advance()
		return true
	}
	return false
}

// text returns the source between start and the cursor.
func (p *parser) text(start int) string {
	return string(p.src[start:p.pos])
}

// number scans and parses a numeric literal at the cursor.
func (p *parser) number() (float64, error) {
	start := p.pos
	var dot, exp, sign bool
	for {
		switch {
		case p.ch != eof && unicode.IsDigit(p.ch):
			sign = false
		case p.ch == '.' && !dot && !exp:
			dot = true
		case (p.ch == 'e' || p.ch == 'E') && !exp:
			exp = true
			sign = true
			p.advance()
			continue
		case (p.ch == '+' || p.ch == '-') && sign:
			sign = false
		default:
			return p.parseNumber(start)
		}
		sign = false
		p.advance()
	}
}

func (p *parser) parseNumber(start int) (float64, error) {
	s := p.text(start)
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow and underflow still produce the right infinity or zero.
		if errors.Is(err, strconv.ErrRange) {
			return x, nil
		}
		return 0, &NumberError{Index: start, Text: s}
	}
	return x, nil
}

// ident scans a function name at the cursor and returns it in lower case.
func (p *parser) ident() string {
	start := p.pos
	for p.ch != eof && (unicode.IsLetter(p.ch) || unicode.IsDigit(p.ch)) {
		p.advance()
	}
	return strings.ToLower(p.text(start))
}

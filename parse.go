package calc

import (
	"math"
	"unicode"
)

// Relation = Expr { ('==' | '!=') Relation | ('<' | '<=' | '>' | '>=') Expr }
// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/' | '%') Factor }
// Factor = ('+' | '-') Factor | ( '(' Relation ')' | num | Call ) [ '^' Factor ]
// Call = funcname '(' [ Relation { ',' Relation } ] ')'

// maxDepth is the deepest nesting of relations and factors that Eval accepts.
const maxDepth = 10000

// enter descends one level, failing once the nesting is too deep. Each
// successful enter is paired with a leave.
func (p *parser) enter() error {
	if p.depth >= maxDepth {
		return &DepthError{Index: p.pos}
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// relation parses and evaluates a relation. Equality operators take a whole
// relation on their right; ordering operators take a single expression and
// fold into the result so far.
func (p *parser) relation() (float64, error) {
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()
	x, err := p.expression()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.consume('='):
			if !p.consume('=') {
				return 0, &OperatorError{Index: p.pos, Operator: "="}
			}
			y, err := p.relation()
			if err != nil {
				return 0, err
			}
			x = truth(x == y)
		case p.consume('!'):
			if !p.consume('=') {
				return 0, &OperatorError{Index: p.pos, Operator: "!"}
			}
			y, err := p.relation()
			if err != nil {
				return 0, err
			}
			x = truth(x != y)
		case p.consume('>'):
			eq := p.consume('=')
			y, err := p.expression()
			if err != nil {
				return 0, err
			}
			if eq {
				x = truth(x >= y)
			} else {
				x = truth(x > y)
			}
		case p.consume('<'):
			eq := p.consume('=')
			y, err := p.expression()
			if err != nil {
				return 0, err
			}
			if eq {
				x = truth(x <= y)
			} else {
				x = truth(x < y)
			}
		default:
			return x, nil
		}
	}
}

// expression parses and evaluates a sum of terms.
func (p *parser) expression() (float64, error) {
	x, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.consume('+'):
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x += y
		case p.consume('-'):
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

// term parses and evaluates a product of factors.
func (p *parser) term() (float64, error) {
	x, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.consume('*'):
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x *= y
		case p.consume('/'):
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x /= y
		case p.consume('%'):
			y, err := p.factor()
			if err != nil {
				return 0, err
			}
			x = math.Mod(x, y)
		default:
			return x, nil
		}
	}
}

// factor parses and evaluates a signed factor. Signs apply to everything
// after them, including exponentiation: -2^2 is -(2^2).
func (p *parser) factor() (float64, error) {
	if err := p.enter(); err != nil {
		return 0, err
	}
	defer p.leave()
	if p.consume('+') {
		return p.factor()
	}
	if p.consume('-') {
		x, err := p.factor()
		return -x, err
	}

	var x float64
	var err error
	switch {
	case p.consume('('):
		x, err = p.relation()
		if err != nil {
			return 0, err
		}
		if !p.consume(')') {
			return 0, &ParenError{Index: p.pos}
		}
	case p.ch == '.', p.ch != eof && unicode.IsDigit(p.ch):
		x, err = p.number()
	case p.ch != eof && unicode.IsLetter(p.ch):
		x, err = p.call()
	default:
		return 0, &CharError{Index: p.pos, Char: p.ch}
	}
	if err != nil {
		return 0, err
	}

	if p.consume('^') {
		// Right-associative: a^b^c is a^(b^c).
		y, err := p.factor()
		if err != nil {
			return 0, err
		}
		x = math.Pow(x, y)
	}
	return x, nil
}

// call parses a function call and evaluates it.
func (p *parser) call() (float64, error) {
	start := p.pos
	name := p.ident()
	if !p.consume('(') {
		return 0, &ParenError{Index: p.pos, Func: name, Open: true}
	}
	args, err := p.arglist()
	if err != nil {
		return 0, err
	}
	if !p.consume(')') {
		return 0, &ParenError{Index: p.pos, Func: name}
	}
	fn := funcs[name]
	if fn == nil || !fn.canCall(len(args)) {
		return 0, &CallError{Index: start, Func: name, Len: len(args)}
	}
	r, err := fn.call(p.scale, args)
	if err != nil {
		return 0, &DomainError{Index: start, Func: name, Reason: err.Error()}
	}
	return r, nil
}

// arglist parses a comma-separated list of zero or more relations. The list
// is empty only if the close paren immediately follows the open paren.
func (p *parser) arglist() ([]float64, error) {
	var args []float64
	if p.ch != ')' {
		x, err := p.relation()
		if err != nil {
			return nil, err
		}
		args = append(args, x)
	}
	for p.consume(',') {
		x, err := p.relation()
		if err != nil {
			return nil, err
		}
		args = append(args, x)
	}
	return args, nil
}

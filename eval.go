package calc

// Evaluator evaluates expressions. Its only state is the angle mode, which
// persists across calls to Eval until it is changed. Eval may be called
// concurrently, but changing the mode while another goroutine is evaluating
// is a data race. The zero Evaluator is ready for use in radian mode.
type Evaluator struct {
	degrees bool
}

// Option is an option used when creating an evaluator.
type Option interface {
	evalOption(*Evaluator)
}

type degreeopt struct{}

func (degreeopt) evalOption(ev *Evaluator) {
	ev.degrees = true
}

// Degrees creates the evaluator in degree mode.
func Degrees() Option {
	return degreeopt{}
}

// New creates an evaluator. It is in radian mode unless an option says
// otherwise.
func New(opts ...Option) *Evaluator {
	var ev Evaluator
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&ev)
	}
	return &ev
}

// Eval evaluates an expression and returns its value. Relations and logical
// functions produce 1 for true and 0 for false. NaN and infinite results are
// not errors. If the expression is invalid, the error is an InputError that
// unwraps to ErrInvalidExpression.
func (ev *Evaluator) Eval(expr string) (float64, error) {
	p := newParser(expr, ev.scale())
	x, err := p.relation()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.ch != eof {
		return 0, &CharError{Index: p.pos, Char: p.ch, Trailing: true}
	}
	return x, nil
}

// SetDegreeMode makes trig functions take their arguments in degrees and
// inverse trig functions return degrees.
func (ev *Evaluator) SetDegreeMode() {
	ev.degrees = true
}

// SetRadianMode makes trig functions take their arguments in radians and
// inverse trig functions return radians. This is the default.
func (ev *Evaluator) SetRadianMode() {
	ev.degrees = false
}

// IsDegreeMode returns whether the evaluator is in degree mode.
func (ev *Evaluator) IsDegreeMode() bool {
	return ev.degrees
}

// IsRadianMode returns whether the evaluator is in radian mode.
func (ev *Evaluator) IsRadianMode() bool {
	return !ev.degrees
}

// scale is the number of radians per angle unit.
func (ev *Evaluator) scale() float64 {
	if ev.degrees {
		return degToRad
	}
	return 1
}

// EvalString is a shortcut to evaluate an expression with a new evaluator.
func EvalString(expr string, opts ...Option) (float64, error) {
	return New(opts...).Eval(expr)
}

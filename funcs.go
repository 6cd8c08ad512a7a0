package calc

import (
	"errors"
	"math"
)

// function is an entry in the function table. The parser checks canCall
// before call, so call may index args freely.
type function interface {
	// call evaluates the function. scale is the evaluator's angle scale.
	// A non-nil error means an argument is outside what the function accepts
	// and becomes a DomainError.
	call(scale float64, args []float64) (float64, error)

	// canCall returns whether the function can be called with n arguments.
	canCall(n int) bool
}

// degToRad and radToDeg convert between degrees and radians.
const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

var funcs = map[string]function{
	// constants
	"pi": constant(math.Pi),
	"e":  constant(math.E),

	"abs":    monadic(math.Abs),
	"ceil":   monadic(math.Ceil),
	"floor":  monadic(math.Floor),
	"round":  monadic(roundHalfUp),
	"signum": monadic(signum),
	"sqrt":   monadic(math.Sqrt),
	"cbrt":   monadic(math.Cbrt),

	// trig
	"sin":  angular(math.Sin),
	"cos":  angular(math.Cos),
	"tan":  angular(math.Tan),
	"asin": inverse(math.Asin),
	"acos": inverse(math.Acos),
	"atan": overload{
		inverse(math.Atan),
		inverse2(math.Atan2),
	},
	"atan2": inverse2(math.Atan2),

	// hyperbolic
	"sinh":  monadic(math.Sinh),
	"cosh":  monadic(math.Cosh),
	"tanh":  monadic(math.Tanh),
	"asinh": monadic(func(x float64) float64 { return math.Log(x + math.Sqrt(x*x+1)) }),
	"acosh": monadic(func(x float64) float64 { return math.Log(x + math.Sqrt(x*x-1)) }),
	"atanh": monadic(func(x float64) float64 { return 0.5 * math.Log((1+x)/(1-x)) }),

	"exp": monadic(math.Exp),
	"log": overload{
		monadic(math.Log),
		dyadic(func(base, x float64) float64 { return math.Log(x) / math.Log(base) }),
	},
	"log2":      monadic(func(x float64) float64 { return math.Log(x) / math.Log(2) }),
	"log10":     monadic(math.Log10),
	"toradians": monadic(func(x float64) float64 { return x * degToRad }),
	"todegrees": monadic(func(x float64) float64 { return x * radToDeg }),

	"hypot": dyadic(math.Hypot),
	"max":   dyadic(math.Max),
	"min":   dyadic(math.Min),
	"pow":   dyadic(math.Pow),

	// logic
	"not": monadic(func(x float64) float64 { return truth(x == 0) }),
	"and": dyadic(func(x, y float64) float64 { return truth(x != 0 && y != 0) }),
	"or":  dyadic(func(x, y float64) float64 { return truth(x != 0 || y != 0) }),
	"xor": dyadic(func(x, y float64) float64 { return truth((x != 0) != (y != 0)) }),
	"if": triadic(func(c, a, b float64) float64 {
		if c != 0 {
			return a
		}
		return b
	}),

	// combinatorics
	"fact": checked{1, fact},
	"comb": checked{2, comb},
	"perm": checked{2, perm},
}

// Funcs returns the names of all functions that can be called in expressions,
// in sorted order.
func Funcs() []string {
	names := make([]string, 0, len(funcs))
	for k := range funcs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

type constant float64

func (c constant) call(scale float64, args []float64) (float64, error) {
	return float64(c), nil
}

func (constant) canCall(n int) bool {
	return n == 0
}

type monadic func(x float64) float64

func (f monadic) call(scale float64, args []float64) (float64, error) {
	return f(args[0]), nil
}

func (monadic) canCall(n int) bool {
	return n == 1
}

type dyadic func(x, y float64) float64

func (f dyadic) call(scale float64, args []float64) (float64, error) {
	return f(args[0], args[1]), nil
}

func (dyadic) canCall(n int) bool {
	return n == 2
}

type triadic func(x, y, z float64) float64

func (f triadic) call(scale float64, args []float64) (float64, error) {
	return f(args[0], args[1], args[2]), nil
}

func (triadic) canCall(n int) bool {
	return n == 3
}

// angular is a trig function whose argument is an angle in the evaluator's
// units.
type angular func(x float64) float64

func (f angular) call(scale float64, args []float64) (float64, error) {
	return f(args[0] * scale), nil
}

func (angular) canCall(n int) bool {
	return n == 1
}

// inverse is an inverse trig function whose result is an angle in the
// evaluator's units.
type inverse func(x float64) float64

func (f inverse) call(scale float64, args []float64) (float64, error) {
	return f(args[0]) / scale, nil
}

func (inverse) canCall(n int) bool {
	return n == 1
}

// inverse2 is the two-argument arctangent.
type inverse2 func(y, x float64) float64

func (f inverse2) call(scale float64, args []float64) (float64, error) {
	return f(args[0], args[1]) / scale, nil
}

func (inverse2) canCall(n int) bool {
	return n == 2
}

// checked is a function that validates its arguments.
type checked struct {
	n int
	f func(args []float64) (float64, error)
}

func (c checked) call(scale float64, args []float64) (float64, error) {
	return c.f(args)
}

func (c checked) canCall(n int) bool {
	return n == c.n
}

// overload selects the first function that accepts the number of arguments.
type overload []function

func (o overload) call(scale float64, args []float64) (float64, error) {
	for _, f := range o {
		if f.canCall(len(args)) {
			return f.call(scale, args)
		}
	}
	panic("calc: overload called with no matching arity")
}

func (o overload) canCall(n int) bool {
	for _, f := range o {
		if f.canCall(n) {
			return true
		}
	}
	return false
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// roundLimit is the magnitude at which roundHalfUp saturates.
const roundLimit = 1 << 63

// roundHalfUp rounds to the nearest integer with ties toward positive
// infinity. NaN rounds to 0 and the result saturates at ±2^63.
func roundHalfUp(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	switch {
	case r > roundLimit:
		return roundLimit
	case r < -roundLimit:
		return -roundLimit
	}
	return r
}

func signum(x float64) float64 {
	if x == 0 || math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}

// whole reports whether x is a non-negative integer.
func whole(x float64) bool {
	return roundHalfUp(x) == x && x >= 0
}

var (
	errFact   = errors.New("n must be a non-negative integer")
	errChoose = errors.New("m and n must be non-negative integers with m >= n")
)

func fact(args []float64) (float64, error) {
	n := args[0]
	if !whole(n) {
		return 0, errFact
	}
	r := 1.0
	for j := 2.0; j <= n && !math.IsInf(r, 1); j++ {
		r *= j
	}
	return r, nil
}

func perm(args []float64) (float64, error) {
	m, n := args[0], args[1]
	if !whole(m) || !whole(n) || m < n {
		return 0, errChoose
	}
	r := 1.0
	for k := 0.0; k < n && !math.IsInf(r, 1); k++ {
		r *= m - k
	}
	return r, nil
}

func comb(args []float64) (float64, error) {
	m, n := args[0], args[1]
	if !whole(m) || !whole(n) || m < n {
		return 0, errChoose
	}
	// After each step r is comb(m, k+1).
	r := 1.0
	for k := 0.0; k < n && !math.IsInf(r, 1); k++ {
		r *= (m - k) / (k + 1)
	}
	return r, nil
}

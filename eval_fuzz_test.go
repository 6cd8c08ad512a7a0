//go:build go1.18
// +build go1.18

package calc_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("2*(3+7")
	f.Add("sin(pi()/2) >= 1 == 1")
	f.Add("fact(170)/comb(16,3)")
	f.Add("1Ã—2")
	f.Add("--1e+")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := calc.EvalString(s)
		if err == nil {
			return
		}
		var ie calc.InputError
		if !errors.As(err, &ie) {
			t.Fatalf("%q: error %v is not an InputError", s, err)
		}
		if !errors.Is(err, calc.ErrInvalidExpression) {
			t.Errorf("%q: error %v does not unwrap to ErrInvalidExpression", s, err)
		}
		if p := ie.Pos(); p < 0 || p > utf8.RuneCountInString(s) {
			t.Errorf("%q: position %d out of range", s, p)
		}
	})
}

package calc

import (
	"errors"
	"strconv"
)

// ErrInvalidExpression is the error kind shared by every evaluation failure.
// Each error returned from Eval unwraps to it.
var ErrInvalidExpression = errors.New("invalid math expression")

// NumberError indicates a numeric literal that could not be parsed. It
// implements InputError.
type NumberError struct {
	// Index is the offset of the first rune of the literal.
	Index int
	// Text is the scanned literal.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Index, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Index
}

func (err *NumberError) Unwrap() error {
	return ErrInvalidExpression
}

// ParenError indicates a missing parenthesis. It implements InputError.
type ParenError struct {
	// Index is the position where the parenthesis was expected.
	Index int
	// Func is the function being called, if any.
	Func string
	// Open is true when an open parenthesis was expected after a function
	// name and false when a close parenthesis was expected.
	Open bool
}

func (err *ParenError) Error() string {
	switch {
	case err.Open:
		return errpos(err.Index, "missing '(' after "+err.Func)
	case err.Func != "":
		return errpos(err.Index, "missing ')' after arguments to "+err.Func)
	default:
		return errpos(err.Index, "missing ')'")
	}
}

func (err *ParenError) Pos() int {
	return err.Index
}

func (err *ParenError) Unwrap() error {
	return ErrInvalidExpression
}

// CallError indicates a call to a function name that does not exist or does
// not accept the given number of arguments. It implements InputError.
type CallError struct {
	// Index is the position of the function name.
	Index int
	// Func is the lower-cased function name.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *CallError) Error() string {
	switch err.Len {
	case 0:
		return errpos(err.Index, "unknown function "+err.Func+"()")
	case 1:
		return errpos(err.Index, "unknown function "+err.Func+" with 1 argument")
	default:
		return errpos(err.Index, "unknown function "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
	}
}

func (err *CallError) Pos() int {
	return err.Index
}

func (err *CallError) Unwrap() error {
	return ErrInvalidExpression
}

// DomainError is an error returned when a function that requires whole
// numbers is called with arguments it cannot accept. Results that are merely
// NaN or infinite are not errors. It implements InputError.
type DomainError struct {
	// Index is the position of the function name.
	Index int
	// Func is a name identifying the function.
	Func string
	// Reason describes the requirement that was violated.
	Reason string
}

func (err *DomainError) Error() string {
	return errpos(err.Index, "invalid argument to "+err.Func+": "+err.Reason)
}

func (err *DomainError) Pos() int {
	return err.Index
}

func (err *DomainError) Unwrap() error {
	return ErrInvalidExpression
}

// OperatorError indicates a lone '=' or '!' that is not part of "==" or
// "!=". It implements InputError.
type OperatorError struct {
	// Index is the position following the incomplete operator.
	Index int
	// Operator is the incomplete operator.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Index, "invalid operator "+strconv.Quote(err.Operator)+", probably missing '='")
}

func (err *OperatorError) Pos() int {
	return err.Index
}

func (err *OperatorError) Unwrap() error {
	return ErrInvalidExpression
}

// CharError indicates a character that cannot start a factor, or input
// remaining after a complete expression. It implements InputError.
type CharError struct {
	// Index is the position of the character.
	Index int
	// Char is the unexpected character, or -1 for the end of the input.
	Char rune
	// Trailing is whether the character follows a complete expression.
	Trailing bool
}

func (err *CharError) Error() string {
	if err.Char == eof {
		return errpos(err.Index, "unexpected end of expression")
	}
	msg := "unexpected character " + strconv.QuoteRune(err.Char)
	if err.Trailing {
		msg += " after end of expression"
	}
	return errpos(err.Index, msg)
}

func (err *CharError) Pos() int {
	return err.Index
}

func (err *CharError) Unwrap() error {
	return ErrInvalidExpression
}

// DepthError indicates an expression nested more deeply than the evaluator
// allows, through parentheses, unary signs, exponents, or relations. It
// implements InputError.
type DepthError struct {
	// Index is the position at which the limit was exceeded.
	Index int
}

func (err *DepthError) Error() string {
	return errpos(err.Index, "expression nested too deeply")
}

func (err *DepthError) Pos() int {
	return err.Index
}

func (err *DepthError) Unwrap() error {
	return ErrInvalidExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "index " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based rune offset in the input at which the error
	// was detected.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*DepthError)(nil)
)

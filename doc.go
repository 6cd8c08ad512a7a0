// Package calc evaluates math expressions given as strings.
//
// The syntax is the usual one for calculators: "2*(3+7)", "3.2*sin(0.56)",
// "sqrt(3^2 + 4^2)". Exponentiation is right-associative and binds tighter
// than unary signs, so "-2^2" is -4 and "2^3^2" is 512. Functions are always
// called with parentheses, including the constants "pi()" and "e()", and a
// function name may mean different things for different numbers of
// arguments: "log(x)" is the natural logarithm and "log(b, x)" is the base b
// logarithm.
//
// Relations evaluate to 1 for true and 0 for false. "==" and "!=" take the
// whole relation to their right, so "1==1==0" is 1==(1==0), which is 0. The
// ordering operators "<", "<=", ">", and ">=" apply left to right to the
// result so far, so "2 < 4 < 1" is (2<4)<1, also 0. The functions not, and,
// or, xor, and if treat any nonzero value as true.
//
// An Evaluator remembers whether trig functions use radians or degrees.
// Nothing else carries over between evaluations. Parentheses, unary signs,
// exponents, and equality chains may nest at most 10000 levels deep.
package calc

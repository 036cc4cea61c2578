package vmath

import "golang.org/x/exp/constraints"

// Mod returns x modulo n in [0, n) for n > 0
// Go's % truncates toward zero, so -1 % 10 is -1; the bound is added back for negative remainders
func Mod[T constraints.Integer](x, n T) T {
	m := x % n
	if m < 0 {
		return m + n
	}
	return m
}

// WrapInc increments x by one within [0, n)
func WrapInc(x, n int) int {
	return Mod(x+1, n)
}

// WrapDec decrements x by one within [0, n)
func WrapDec(x, n int) int {
	return Mod(x-1, n)
}

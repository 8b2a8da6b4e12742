package util

import (
	"golang.org/x/exp/constraints"
)

// Mod is the floored modulo: the result always lands in [0, m).
func Mod[A constraints.Integer](n A, m A) A {
	return ((n % m) + m) % m
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

package helpers

import "golang.org/x/exp/constraints"

// Min returns the smallest of first and rest.
func Min[T constraints.Ordered](first T, rest ...T) T {
	res := first
	for _, n := range rest {
		if n < res {
			res = n
		}
	}
	return res
}

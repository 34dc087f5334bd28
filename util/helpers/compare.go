package helpers

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Ascending returns a payload comparator ordering regions by the leading
// big-endian integer of type T.
func Ascending[T constraints.Integer]() func(a, b []byte) int {
	return func(a, b []byte) int {
		return Compare(Int[T](a), Int[T](b))
	}
}

func Descending[T constraints.Integer]() func(a, b []byte) int {
	return func(a, b []byte) int {
		return Compare(Int[T](b), Int[T](a))
	}
}

// Lexical orders payloads as NUL-terminated strings, ignoring any bytes after
// the first zero byte.
func Lexical(a, b []byte) int {
	return bytes.Compare(CString(a), CString(b))
}

// CString returns b up to (not including) its first zero byte.
func CString(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

package helpers

import "golang.org/x/exp/constraints"

// PutInt writes v big-endian into the first Sizeof(v) bytes of dst and
// returns the number of bytes written.
func PutInt[T constraints.Integer](dst []byte, v T) int {
	n := Sizeof(v)
	u := uint64(v)
	for i := n - 1; i >= 0; i-- {
		dst[i] = byte(u)
		u >>= 8
	}
	return n
}

// Int decodes a big-endian integer of T's width from the start of src.
func Int[T constraints.Integer](src []byte) T {
	var v T
	var u uint64
	for i := 0; i < Sizeof(v); i++ {
		u = u<<8 | uint64(src[i])
	}
	return T(u)
}

// IntBytes allocates a buffer holding v encoded by PutInt.
func IntBytes[T constraints.Integer](v T) []byte {
	buf := make([]byte, Sizeof(v))
	PutInt(buf, v)
	return buf
}

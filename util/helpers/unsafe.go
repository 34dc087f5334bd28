package helpers

import (
	"reflect"
)

func Sizeof[T any](v T) int {
	return int(reflect.TypeOf(v).Size())
}

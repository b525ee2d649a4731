package arrowops

import (
	"github.com/apache/arrow/go/v17/arrow/array"
)

type valueArray[T comparable] interface {
	IsNull(i int) bool
	Value(i int) T
	Len() int
}

type valueBuilder[T comparable] interface {
	array.Builder
	Append(v T)
}

type integer interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type floating interface {
	~float32 | ~float64
}

type number interface {
	integer | floating
}

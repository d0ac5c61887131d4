// Package dtypes lists the scalar types carried by loop-nest IR expressions.
//
// Loop indices and their bounds are integers; predicates are booleans.
package dtypes

import (
	"fmt"
)

// DType is the scalar type of an IR expression.
type DType int

const (
	InvalidDType DType = iota
	Bool
	Int32
	Int64
)

// String returns the IR representation of the DType, as printed in lowered statements.
func (dtype DType) String() string {
	switch dtype {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("unknown_dtype<%d>", int(dtype))
	}
}

// IsInt returns whether the DType is one of the integer types.
func (dtype DType) IsInt() bool {
	return dtype == Int32 || dtype == Int64
}

// Bits returns the storage width of the DType.
func (dtype DType) Bits() int {
	switch dtype {
	case Bool:
		return 1
	case Int32:
		return 32
	case Int64:
		return 64
	default:
		return 0
	}
}

// Wrap truncates v to the range representable by the DType, with two's complement wraparound.
// Booleans are normalized to 0 or 1.
func (dtype DType) Wrap(v int64) int64 {
	switch dtype {
	case Bool:
		if v != 0 {
			return 1
		}
		return 0
	case Int32:
		return int64(int32(v))
	default:
		return v
	}
}

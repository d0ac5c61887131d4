// Package ir is the small expression IR used to describe loop bounds, index rewrites and
// boundary predicates of a loop nest.
//
// Expressions are immutable trees of *Expr nodes. A nil *Expr is the undefined expression
// (for instance the factor of a fuse directive). All integer arithmetic is index arithmetic:
// division and modulo are Euclidean (the remainder is never negative) and dividing by zero
// yields zero.
//
// Constructors panic (see github.com/gomlx/exceptions) when given operands of mismatched
// types, since that is always a bug in the code building the expression.
package ir

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/loopnest/internal/optypes"
	"github.com/gomlx/loopnest/pkg/types/dtypes"
)

// Expr is one node of an expression tree.
type Expr struct {
	OpType   optypes.OpType
	DType    dtypes.DType
	Operands []*Expr

	// Value is the payload of constants: booleans are stored as 0 or 1.
	Value int64

	// Name of a variable.
	Name string
}

// Int returns an int32 constant.
func Int(v int64) *Expr {
	return IntOf(dtypes.Int32, v)
}

// IntOf returns an integer constant of the given dtype.
func IntOf(dtype dtypes.DType, v int64) *Expr {
	if !dtype.IsInt() {
		exceptions.Panicf("ir.IntOf: dtype %s is not an integer type", dtype)
	}
	return &Expr{OpType: optypes.OpTypeConstant, DType: dtype, Value: dtype.Wrap(v)}
}

// Bool returns a boolean constant.
func Bool(b bool) *Expr {
	var v int64
	if b {
		v = 1
	}
	return &Expr{OpType: optypes.OpTypeBoolConstant, DType: dtypes.Bool, Value: v}
}

// Var returns a reference to an int32 variable.
func Var(name string) *Expr {
	return VarOf(dtypes.Int32, name)
}

// VarOf returns a reference to a variable of the given dtype.
func VarOf(dtype dtypes.DType, name string) *Expr {
	if name == "" {
		exceptions.Panicf("ir.VarOf: empty variable name")
	}
	return &Expr{OpType: optypes.OpTypeVariable, DType: dtype, Name: name}
}

// binaryOp builds a node with two operands of the same dtype.
func binaryOp(op optypes.OpType, lhs, rhs *Expr) *Expr {
	if lhs == nil || rhs == nil {
		exceptions.Panicf("ir.%s: undefined operand", op)
	}
	if lhs.DType != rhs.DType {
		exceptions.Panicf("ir.%s: operands have different dtypes (%s and %s): %s, %s",
			op, lhs.DType, rhs.DType, lhs, rhs)
	}
	outputDType := lhs.DType
	switch {
	case op.IsComparison():
		if !lhs.DType.IsInt() {
			exceptions.Panicf("ir.%s: operands must be integers, got %s", op, lhs.DType)
		}
		outputDType = dtypes.Bool
	case op == optypes.OpTypeAnd || op == optypes.OpTypeOr:
		if lhs.DType != dtypes.Bool {
			exceptions.Panicf("ir.%s: operands must be booleans, got %s", op, lhs.DType)
		}
	default:
		if !lhs.DType.IsInt() {
			exceptions.Panicf("ir.%s: operands must be integers, got %s", op, lhs.DType)
		}
	}
	return &Expr{OpType: op, DType: outputDType, Operands: []*Expr{lhs, rhs}}
}

// Add returns lhs + rhs.
func Add(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeAdd, lhs, rhs) }

// Sub returns lhs - rhs.
func Sub(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeSub, lhs, rhs) }

// Mul returns lhs * rhs.
func Mul(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeMul, lhs, rhs) }

// Div returns the Euclidean quotient lhs / rhs.
func Div(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeDiv, lhs, rhs) }

// Mod returns the Euclidean remainder lhs % rhs, always in [0, |rhs|).
func Mod(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeMod, lhs, rhs) }

// Min returns the smaller of lhs and rhs.
func Min(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeMin, lhs, rhs) }

// Max returns the larger of lhs and rhs.
func Max(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeMax, lhs, rhs) }

// EQ returns lhs == rhs.
func EQ(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeEQ, lhs, rhs) }

// NE returns lhs != rhs.
func NE(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeNE, lhs, rhs) }

// LT returns lhs < rhs.
func LT(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeLT, lhs, rhs) }

// LE returns lhs <= rhs.
func LE(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeLE, lhs, rhs) }

// GT returns lhs > rhs.
func GT(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeGT, lhs, rhs) }

// GE returns lhs >= rhs.
func GE(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeGE, lhs, rhs) }

// And returns the conjunction of two booleans.
func And(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeAnd, lhs, rhs) }

// Or returns the disjunction of two booleans.
func Or(lhs, rhs *Expr) *Expr { return binaryOp(optypes.OpTypeOr, lhs, rhs) }

// Not returns the negation of a boolean.
func Not(operand *Expr) *Expr {
	if operand == nil || operand.DType != dtypes.Bool {
		exceptions.Panicf("ir.Not: operand must be a defined boolean, got %s", operand)
	}
	return &Expr{OpType: optypes.OpTypeNot, DType: dtypes.Bool, Operands: []*Expr{operand}}
}

// Likely wraps e in the `likely` intrinsic: code generation should partition the enclosing loop
// into a steady state where e holds and a tail where it may not.
func Likely(e *Expr) *Expr {
	return intrinsic(optypes.OpTypeLikely, e)
}

// LikelyIfInnermost is a weaker form of Likely, only honored when the enclosing loop is the
// innermost non-trivial loop.
func LikelyIfInnermost(e *Expr) *Expr {
	return intrinsic(optypes.OpTypeLikelyIfInnermost, e)
}

func intrinsic(op optypes.OpType, e *Expr) *Expr {
	if e == nil {
		exceptions.Panicf("ir.%s: undefined operand", op)
	}
	return &Expr{OpType: op, DType: e.DType, Operands: []*Expr{e}}
}

// Conjunction returns the "and" of all conditions, or true if there are none.
func Conjunction(conditions ...*Expr) *Expr {
	var result *Expr
	for _, cond := range conditions {
		if result == nil {
			result = cond
		} else {
			result = And(result, cond)
		}
	}
	if result == nil {
		return Bool(true)
	}
	return result
}

// AsConst returns the value of e if it is an integer or boolean constant.
func AsConst(e *Expr) (int64, bool) {
	if e == nil {
		return 0, false
	}
	if e.OpType == optypes.OpTypeConstant || e.OpType == optypes.OpTypeBoolConstant {
		return e.Value, true
	}
	return 0, false
}

// IsZero returns whether e is the constant 0 (or false).
func IsZero(e *Expr) bool {
	v, ok := AsConst(e)
	return ok && v == 0
}

// IsOne returns whether e is the constant 1 (or true).
func IsOne(e *Expr) bool {
	v, ok := AsConst(e)
	return ok && v == 1
}

// IsVar returns whether e is a reference to the named variable.
func IsVar(e *Expr, name string) bool {
	return e != nil && e.OpType == optypes.OpTypeVariable && e.Name == name
}

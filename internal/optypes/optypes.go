// Package optypes enumerates the node kinds of the loop-nest expression IR.
package optypes

// OpType is the kind of an IR expression node.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optypes.go

const (
	OpTypeInvalid OpType = iota
	OpTypeConstant
	OpTypeBoolConstant
	OpTypeVariable

	OpTypeAdd
	OpTypeSub
	OpTypeMul
	OpTypeDiv
	OpTypeMod
	OpTypeMin
	OpTypeMax

	OpTypeEQ
	OpTypeNE
	OpTypeLT
	OpTypeLE
	OpTypeGT
	OpTypeGE

	OpTypeAnd
	OpTypeOr
	OpTypeNot

	// OpTypeLikely marks a condition expected to hold on the fast path of a partitioned loop.
	OpTypeLikely
	// OpTypeLikelyIfInnermost is like OpTypeLikely, but only honored in the innermost loop.
	OpTypeLikelyIfInnermost
)

// IsBinary returns whether the op takes exactly two operands.
func (op OpType) IsBinary() bool {
	return op >= OpTypeAdd && op <= OpTypeOr
}

// IsComparison returns whether the op yields a boolean from two integer operands.
func (op OpType) IsComparison() bool {
	return op >= OpTypeEQ && op <= OpTypeGE
}

// IsCommutative returns whether operands of a binary op can be swapped.
func (op OpType) IsCommutative() bool {
	switch op {
	case OpTypeAdd, OpTypeMul, OpTypeMin, OpTypeMax, OpTypeEQ, OpTypeNE, OpTypeAnd, OpTypeOr:
		return true
	default:
		return false
	}
}

// IsIntrinsic returns whether the op is one of the loop-partitioning hints.
func (op OpType) IsIntrinsic() bool {
	return op == OpTypeLikely || op == OpTypeLikelyIfInnermost
}

package ir

import (
	"github.com/gomlx/loopnest/internal/optypes"
)

// Simplify returns an expression equivalent to e, rewritten bottom-up by constant folding,
// arithmetic identities and a modulus/remainder analysis.
//
// It is not a complete decision procedure: it is only used to prove facts cheaply, like
// "extent % factor == 0", and to keep emitted bounds readable. Expressions it can't improve
// are returned as is (the same pointer).
func Simplify(e *Expr) *Expr {
	if e == nil {
		return nil
	}
	switch e.OpType {
	case optypes.OpTypeConstant, optypes.OpTypeBoolConstant, optypes.OpTypeVariable:
		return e
	case optypes.OpTypeNot:
		return simplifyNot(Simplify(e.Operands[0]))
	case optypes.OpTypeLikely, optypes.OpTypeLikelyIfInnermost:
		operand := Simplify(e.Operands[0])
		if _, ok := AsConst(operand); ok {
			return operand
		}
		if operand == e.Operands[0] {
			return e
		}
		return intrinsic(e.OpType, operand)
	}
	if !e.OpType.IsBinary() {
		return e
	}
	lhs, rhs := Simplify(e.Operands[0]), Simplify(e.Operands[1])
	simplified := simplifyBinary(e.OpType, lhs, rhs)
	if lhs == e.Operands[0] && rhs == e.Operands[1] && Equal(simplified, e) {
		return e
	}
	return simplified
}

func simplifyBinary(op optypes.OpType, a, b *Expr) *Expr {
	switch op {
	case optypes.OpTypeAdd:
		return simplifyAdd(a, b)
	case optypes.OpTypeSub:
		return simplifySub(a, b)
	case optypes.OpTypeMul:
		return simplifyMul(a, b)
	case optypes.OpTypeDiv:
		return simplifyDiv(a, b)
	case optypes.OpTypeMod:
		return simplifyMod(a, b)
	case optypes.OpTypeMin, optypes.OpTypeMax:
		return simplifyMinMax(op, a, b)
	case optypes.OpTypeGT:
		return simplifyCompare(optypes.OpTypeLT, b, a)
	case optypes.OpTypeGE:
		return simplifyCompare(optypes.OpTypeLE, b, a)
	case optypes.OpTypeEQ, optypes.OpTypeNE, optypes.OpTypeLT, optypes.OpTypeLE:
		return simplifyCompare(op, a, b)
	case optypes.OpTypeAnd, optypes.OpTypeOr:
		return simplifyLogical(op, a, b)
	}
	return binaryOp(op, a, b)
}

// foldConstants folds op if both operands are constants.
func foldConstants(op optypes.OpType, a, b *Expr) (*Expr, bool) {
	ca, aOk := AsConst(a)
	cb, bOk := AsConst(b)
	if !aOk || !bOk {
		return nil, false
	}
	v, ok := foldBinary(op, ca, cb)
	if !ok {
		return nil, false
	}
	if op.IsComparison() || op == optypes.OpTypeAnd || op == optypes.OpTypeOr {
		return Bool(v != 0), true
	}
	return IntOf(a.DType, v), true
}

// constantsRight swaps the operands of a commutative op so a constant ends up on the right.
func constantsRight(a, b *Expr) (*Expr, *Expr) {
	if _, ok := AsConst(a); ok {
		return b, a
	}
	return a, b
}

// splitOffset decomposes e into base + offset, where offset is a constant.
// For a constant e, base is nil.
func splitOffset(e *Expr) (base *Expr, offset int64) {
	if c, ok := AsConst(e); ok {
		return nil, c
	}
	if e.OpType == optypes.OpTypeAdd {
		if c, ok := AsConst(e.Operands[1]); ok {
			return e.Operands[0], c
		}
	}
	return e, 0
}

func simplifyAdd(a, b *Expr) *Expr {
	if folded, ok := foldConstants(optypes.OpTypeAdd, a, b); ok {
		return folded
	}
	a, b = constantsRight(a, b)
	if cb, ok := AsConst(b); ok {
		if cb == 0 {
			return a
		}
		if base, c1 := splitOffset(a); c1 != 0 {
			// (x + c1) + c2 -> x + (c1 + c2)
			return simplifyAdd(base, IntOf(a.DType, c1+cb))
		}
		if a.OpType == optypes.OpTypeSub {
			if c1, ok := AsConst(a.Operands[0]); ok {
				// (c1 - x) + c2 -> (c1 + c2) - x
				return simplifySub(IntOf(a.DType, c1+cb), a.Operands[1])
			}
		}
		return Add(a, b)
	}
	if base, c := splitOffset(b); c != 0 {
		// x + (y + c) -> (x + y) + c
		return simplifyAdd(simplifyAdd(a, base), IntOf(b.DType, c))
	}
	if base, c := splitOffset(a); c != 0 {
		// (x + c) + y -> (x + y) + c
		return simplifyAdd(simplifyAdd(base, b), IntOf(a.DType, c))
	}
	if a.OpType == optypes.OpTypeSub && Equal(a.Operands[1], b) {
		// (x - y) + y -> x
		return a.Operands[0]
	}
	if b.OpType == optypes.OpTypeSub && Equal(b.Operands[1], a) {
		// y + (x - y) -> x
		return b.Operands[0]
	}
	if Equal(a, b) {
		return simplifyMul(a, IntOf(a.DType, 2))
	}
	return Add(a, b)
}

func simplifySub(a, b *Expr) *Expr {
	if folded, ok := foldConstants(optypes.OpTypeSub, a, b); ok {
		return folded
	}
	if Equal(a, b) {
		return IntOf(a.DType, 0)
	}
	if cb, ok := AsConst(b); ok {
		return simplifyAdd(a, IntOf(a.DType, -cb))
	}
	if a.OpType == optypes.OpTypeAdd {
		// (x + y) - y -> x, (x + y) - x -> y
		if Equal(a.Operands[1], b) {
			return a.Operands[0]
		}
		if Equal(a.Operands[0], b) {
			return a.Operands[1]
		}
	}
	if b.OpType == optypes.OpTypeAdd && Equal(b.Operands[0], a) {
		// x - (x + y) -> 0 - y
		return simplifySub(IntOf(a.DType, 0), b.Operands[1])
	}
	baseA, ca := splitOffset(a)
	baseB, cb := splitOffset(b)
	if baseA != nil && baseB != nil && (ca != 0 || cb != 0) {
		// (x + c1) - (y + c2) -> (x - y) + (c1 - c2)
		return simplifyAdd(simplifySub(baseA, baseB), IntOf(a.DType, ca-cb))
	}
	return Sub(a, b)
}

func simplifyMul(a, b *Expr) *Expr {
	if folded, ok := foldConstants(optypes.OpTypeMul, a, b); ok {
		return folded
	}
	a, b = constantsRight(a, b)
	cb, ok := AsConst(b)
	if !ok {
		return Mul(a, b)
	}
	switch cb {
	case 0:
		return IntOf(a.DType, 0)
	case 1:
		return a
	}
	if a.OpType == optypes.OpTypeMul {
		if c1, ok := AsConst(a.Operands[1]); ok {
			// (x*c1)*c2 -> x*(c1*c2)
			return simplifyMul(a.Operands[0], IntOf(a.DType, c1*cb))
		}
	}
	if base, c1 := splitOffset(a); c1 != 0 && base != nil {
		// (x + c1)*c2 -> x*c2 + c1*c2
		return simplifyAdd(simplifyMul(base, b), IntOf(a.DType, c1*cb))
	}
	return Mul(a, b)
}

func simplifyDiv(a, b *Expr) *Expr {
	if folded, ok := foldConstants(optypes.OpTypeDiv, a, b); ok {
		return folded
	}
	cb, ok := AsConst(b)
	if !ok {
		return Div(a, b)
	}
	switch {
	case cb == 0:
		return IntOf(a.DType, 0)
	case cb == 1:
		return a
	case cb < 0:
		return Div(a, b)
	}
	if a.OpType == optypes.OpTypeMul {
		if c1, ok := AsConst(a.Operands[1]); ok && c1%cb == 0 {
			// (x*c1)/c2 -> x*(c1/c2)
			return simplifyMul(a.Operands[0], IntOf(a.DType, c1/cb))
		}
	}
	if base, c1 := splitOffset(a); base != nil && c1 != 0 {
		if m, r := ModulusRemainder(base); m%cb == 0 && r%cb == 0 {
			// (x + c1)/c2 -> x/c2 + floor(c1/c2) when c2 divides x.
			return simplifyAdd(simplifyDiv(base, b), IntOf(a.DType, euclidDiv(c1, cb)))
		}
	}
	return Div(a, b)
}

func simplifyMod(a, b *Expr) *Expr {
	if folded, ok := foldConstants(optypes.OpTypeMod, a, b); ok {
		return folded
	}
	cb, ok := AsConst(b)
	if !ok {
		return Mod(a, b)
	}
	switch {
	case cb == 0 || cb == 1 || cb == -1:
		return IntOf(a.DType, 0)
	case cb < 0:
		return Mod(a, b)
	}
	if m, r := ModulusRemainder(a); m%cb == 0 {
		return IntOf(a.DType, euclidMod(r, cb))
	}
	if base, c1 := splitOffset(a); base != nil && c1 != 0 && c1%cb == 0 {
		// (x + c1) % c2 -> x % c2 when c2 divides c1.
		return simplifyMod(base, b)
	}
	if a.OpType == optypes.OpTypeMod {
		if c1, ok := AsConst(a.Operands[1]); ok && c1 > 0 && c1%cb == 0 {
			// (x % c1) % c2 -> x % c2 when c2 divides c1.
			return simplifyMod(a.Operands[0], b)
		}
	}
	return Mod(a, b)
}

func simplifyMinMax(op optypes.OpType, a, b *Expr) *Expr {
	if folded, ok := foldConstants(op, a, b); ok {
		return folded
	}
	a, b = constantsRight(a, b)
	if Equal(a, b) {
		return a
	}
	baseA, ca := splitOffset(a)
	baseB, cb := splitOffset(b)
	if baseA != nil && baseB != nil && Equal(baseA, baseB) {
		// min(x + c1, x + c2) -> x + min(c1, c2)
		if chosen, _ := foldBinary(op, ca, cb); chosen == ca {
			return a
		}
		return b
	}
	if cb, ok := AsConst(b); ok && a.OpType == op {
		if c1, ok := AsConst(a.Operands[1]); ok {
			// min(min(x, c1), c2) -> min(x, min(c1, c2))
			inner, _ := foldBinary(op, c1, cb)
			return simplifyMinMax(op, a.Operands[0], IntOf(a.DType, inner))
		}
	}
	return binaryOp(op, a, b)
}

func simplifyCompare(op optypes.OpType, a, b *Expr) *Expr {
	if folded, ok := foldConstants(op, a, b); ok {
		return folded
	}
	if Equal(a, b) {
		return Bool(op == optypes.OpTypeLE || op == optypes.OpTypeEQ)
	}
	baseA, ca := splitOffset(a)
	baseB, cb := splitOffset(b)
	if baseA != nil && baseB != nil && Equal(baseA, baseB) {
		// x + c1 < x + c2 -> c1 < c2
		v, _ := foldBinary(op, ca, cb)
		return Bool(v != 0)
	}
	if baseA != nil && baseB == nil && ca != 0 {
		// x + c1 < c2 -> x < c2 - c1
		return simplifyCompare(op, baseA, IntOf(a.DType, cb-ca))
	}
	return binaryOp(op, a, b)
}

func simplifyLogical(op optypes.OpType, a, b *Expr) *Expr {
	if folded, ok := foldConstants(op, a, b); ok {
		return folded
	}
	a, b = constantsRight(a, b)
	if cb, ok := AsConst(b); ok {
		isAnd := op == optypes.OpTypeAnd
		if (cb != 0) == isAnd {
			// x && true -> x, x || false -> x
			return a
		}
		return b
	}
	if Equal(a, b) {
		return a
	}
	return binaryOp(op, a, b)
}

func simplifyNot(operand *Expr) *Expr {
	if c, ok := AsConst(operand); ok {
		return Bool(c == 0)
	}
	switch operand.OpType {
	case optypes.OpTypeNot:
		return operand.Operands[0]
	case optypes.OpTypeLT:
		return simplifyCompare(optypes.OpTypeLE, operand.Operands[1], operand.Operands[0])
	case optypes.OpTypeLE:
		return simplifyCompare(optypes.OpTypeLT, operand.Operands[1], operand.Operands[0])
	case optypes.OpTypeEQ:
		return simplifyCompare(optypes.OpTypeNE, operand.Operands[0], operand.Operands[1])
	case optypes.OpTypeNE:
		return simplifyCompare(optypes.OpTypeEQ, operand.Operands[0], operand.Operands[1])
	}
	return Not(operand)
}

// ModulusRemainder returns (modulus, remainder) such that e is always congruent to remainder
// modulo modulus. A modulus of 0 means e is exactly remainder; a modulus of 1 means nothing is
// known about e.
func ModulusRemainder(e *Expr) (modulus, remainder int64) {
	if e == nil {
		return 1, 0
	}
	switch e.OpType {
	case optypes.OpTypeConstant:
		return 0, e.Value
	case optypes.OpTypeLikely, optypes.OpTypeLikelyIfInnermost:
		return ModulusRemainder(e.Operands[0])
	case optypes.OpTypeAdd, optypes.OpTypeSub, optypes.OpTypeMul, optypes.OpTypeMin, optypes.OpTypeMax:
		m1, r1 := ModulusRemainder(e.Operands[0])
		m2, r2 := ModulusRemainder(e.Operands[1])
		switch e.OpType {
		case optypes.OpTypeAdd:
			return normalizeModulusRemainder(gcd(m1, m2), r1+r2)
		case optypes.OpTypeSub:
			return normalizeModulusRemainder(gcd(m1, m2), r1-r2)
		case optypes.OpTypeMul:
			// (m1*k1 + r1)*(m2*k2 + r2) = m1*m2*k1*k2 + m1*k1*r2 + m2*k2*r1 + r1*r2
			return normalizeModulusRemainder(gcd(gcd(m1*m2, m1*r2), m2*r1), r1*r2)
		default:
			// The result is one of the operands: only what they have in common survives.
			return normalizeModulusRemainder(gcd(gcd(m1, m2), r1-r2), r1)
		}
	case optypes.OpTypeMod:
		c, ok := AsConst(e.Operands[1])
		if !ok || c <= 0 {
			return 1, 0
		}
		m1, r1 := ModulusRemainder(e.Operands[0])
		if m1 == 0 {
			return 0, euclidMod(r1, c)
		}
		return normalizeModulusRemainder(gcd(m1, c), r1)
	}
	return 1, 0
}

func normalizeModulusRemainder(modulus, remainder int64) (int64, int64) {
	if modulus < 0 {
		modulus = -modulus
	}
	if modulus == 0 {
		return 0, remainder
	}
	return modulus, euclidMod(remainder, modulus)
}

package ir

import (
	"github.com/gomlx/loopnest/internal/optypes"
	"github.com/pkg/errors"
)

// Eval computes the value of e given the values of its free variables.
// Booleans evaluate to 0 or 1, and the loop-partitioning intrinsics evaluate to their operand.
func Eval(e *Expr, env map[string]int64) (int64, error) {
	if e == nil {
		return 0, errors.New("cannot evaluate an undefined expression")
	}
	switch e.OpType {
	case optypes.OpTypeConstant, optypes.OpTypeBoolConstant:
		return e.Value, nil
	case optypes.OpTypeVariable:
		v, found := env[e.Name]
		if !found {
			return 0, errors.Errorf("variable %q is not bound", e.Name)
		}
		return e.DType.Wrap(v), nil
	case optypes.OpTypeLikely, optypes.OpTypeLikelyIfInnermost:
		return Eval(e.Operands[0], env)
	case optypes.OpTypeNot:
		v, err := Eval(e.Operands[0], env)
		if err != nil {
			return 0, err
		}
		return boolToInt(v == 0), nil
	}

	if !e.OpType.IsBinary() {
		return 0, errors.Errorf("cannot evaluate op %s", e.OpType)
	}
	lhs, err := Eval(e.Operands[0], env)
	if err != nil {
		return 0, err
	}
	// Short-circuit the boolean connectives, the way lowered code would.
	if e.OpType == optypes.OpTypeAnd && lhs == 0 {
		return 0, nil
	}
	if e.OpType == optypes.OpTypeOr && lhs != 0 {
		return 1, nil
	}
	rhs, err := Eval(e.Operands[1], env)
	if err != nil {
		return 0, err
	}
	v, ok := foldBinary(e.OpType, lhs, rhs)
	if !ok {
		return 0, errors.Errorf("cannot evaluate op %s", e.OpType)
	}
	return e.DType.Wrap(v), nil
}

// foldBinary applies a binary op to two constants.
func foldBinary(op optypes.OpType, a, b int64) (int64, bool) {
	switch op {
	case optypes.OpTypeAdd:
		return a + b, true
	case optypes.OpTypeSub:
		return a - b, true
	case optypes.OpTypeMul:
		return a * b, true
	case optypes.OpTypeDiv:
		return euclidDiv(a, b), true
	case optypes.OpTypeMod:
		return euclidMod(a, b), true
	case optypes.OpTypeMin:
		return min(a, b), true
	case optypes.OpTypeMax:
		return max(a, b), true
	case optypes.OpTypeEQ:
		return boolToInt(a == b), true
	case optypes.OpTypeNE:
		return boolToInt(a != b), true
	case optypes.OpTypeLT:
		return boolToInt(a < b), true
	case optypes.OpTypeLE:
		return boolToInt(a <= b), true
	case optypes.OpTypeGT:
		return boolToInt(a > b), true
	case optypes.OpTypeGE:
		return boolToInt(a >= b), true
	case optypes.OpTypeAnd:
		return boolToInt(a != 0 && b != 0), true
	case optypes.OpTypeOr:
		return boolToInt(a != 0 || b != 0), true
	}
	return 0, false
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// euclidDiv rounds towards negative infinity for positive divisors, so that
// a == b*euclidDiv(a, b) + euclidMod(a, b) always holds. Division by zero is zero.
func euclidDiv(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	q := a / b
	if a%b < 0 {
		if b > 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

// euclidMod returns a remainder in [0, |b|). Modulo by zero is zero.
func euclidMod(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	r := a % b
	if r < 0 {
		if b > 0 {
			r += b
		} else {
			r -= b
		}
	}
	return r
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

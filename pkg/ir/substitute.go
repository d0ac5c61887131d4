package ir

import (
	"slices"

	"github.com/gomlx/loopnest/internal/optypes"
	"github.com/hashicorp/go-set/v3"
)

// Substitute returns e with every reference to the variable name replaced by replacement.
// Sub-trees that don't reference name are shared with the input, not copied.
func Substitute(name string, replacement, e *Expr) *Expr {
	return SubstituteAll(map[string]*Expr{name: replacement}, e)
}

// SubstituteAll replaces all variables found in replacements simultaneously: the replacement
// expressions themselves are not visited.
func SubstituteAll(replacements map[string]*Expr, e *Expr) *Expr {
	if e == nil || len(replacements) == 0 {
		return e
	}
	if e.OpType == optypes.OpTypeVariable {
		if replacement, found := replacements[e.Name]; found {
			return replacement
		}
		return e
	}
	if len(e.Operands) == 0 {
		return e
	}
	var newOperands []*Expr
	for i, operand := range e.Operands {
		newOperand := SubstituteAll(replacements, operand)
		if newOperand != operand && newOperands == nil {
			newOperands = slices.Clone(e.Operands)
		}
		if newOperands != nil {
			newOperands[i] = newOperand
		}
	}
	if newOperands == nil {
		return e
	}
	newExpr := *e
	newExpr.Operands = newOperands
	return &newExpr
}

// FreeVars returns the set of variable names referenced by e.
func FreeVars(e *Expr) *set.Set[string] {
	vars := set.New[string](4)
	collectVars(e, vars)
	return vars
}

func collectVars(e *Expr, vars *set.Set[string]) {
	if e == nil {
		return
	}
	if e.OpType == optypes.OpTypeVariable {
		vars.Insert(e.Name)
		return
	}
	for _, operand := range e.Operands {
		collectVars(operand, vars)
	}
}

// UsesVar returns whether e references the variable name.
func UsesVar(e *Expr, name string) bool {
	if e == nil {
		return false
	}
	if e.OpType == optypes.OpTypeVariable {
		return e.Name == name
	}
	for _, operand := range e.Operands {
		if UsesVar(operand, name) {
			return true
		}
	}
	return false
}

// Equal returns whether a and b are structurally identical.
// Two undefined (nil) expressions are equal.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.OpType != b.OpType || a.DType != b.DType || a.Value != b.Value || a.Name != b.Name ||
		len(a.Operands) != len(b.Operands) {
		return false
	}
	for i := range a.Operands {
		if !Equal(a.Operands[i], b.Operands[i]) {
			return false
		}
	}
	return true
}
